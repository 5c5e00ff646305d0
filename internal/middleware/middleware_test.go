package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"projectTracker/internal/logger"
	"projectTracker/internal/middleware"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	if err := logger.Init(true); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestActor(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected uuid.UUID
	}{
		{
			name:     "valid header",
			header:   "0190a6e2-26a7-7cf0-8edf-66dd05f1e965",
			expected: uuid.MustParse("0190a6e2-26a7-7cf0-8edf-66dd05f1e965"),
		},
		{
			name:     "missing header",
			header:   "",
			expected: uuid.Nil,
		},
		{
			name:     "garbage header",
			header:   "not-a-uuid",
			expected: uuid.Nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = middleware.GetActor(r.Context())
			})

			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("X-User-ID", tt.header)
			}
			w := httptest.NewRecorder()

			middleware.Actor(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expected, got)
			// неверный заголовок не валит запрос, он просто анонимный
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	t.Run("generates id", func(t *testing.T) {
		var got string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = middleware.GetRequestID(r.Context())
		})

		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		middleware.RequestID(next).ServeHTTP(w, req)

		assert.NotEmpty(t, got)
		assert.Equal(t, got, w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps client id", func(t *testing.T) {
		var got string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = middleware.GetRequestID(r.Context())
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "client-id")
		w := httptest.NewRecorder()

		middleware.RequestID(next).ServeHTTP(w, req)

		assert.Equal(t, "client-id", got)
	})
}

func TestRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := middleware.RateLimit(2)(next)

	makeRequest := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, makeRequest().Code)
	assert.Equal(t, http.StatusOK, makeRequest().Code)

	third := makeRequest()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Contains(t, third.Body.String(), "rate_limit_exceeded")

	// другой клиент лимитом не задет
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	limited.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

package handlers

import (
	"errors"
	"net/http"

	"projectTracker/internal/logger"
	"projectTracker/internal/service"

	"go.uber.org/zap"
)

// handleServiceError переводит бизнес-ошибку в HTTP-ответ.
// Всё, что не является *service.BusinessError, уходит как 500.
func handleServiceError(w http.ResponseWriter, err error) {
	var businessErr *service.BusinessError
	if errors.As(err, &businessErr) {
		statusCode := mapBusinessErrorToHTTP(businessErr.Code)

		logger.Warn("HTTP: Бизнес-ошибка",
			zap.String("error_code", businessErr.Code),
			zap.Int("http_status", statusCode))

		responseWithJSON(w, statusCode, map[string]any{
			"error":   businessErr.Code,
			"message": businessErr.Message,
			"details": businessErr.Details,
		})
		return
	}

	logger.Error("HTTP: Внутренняя ошибка", err)
	responseWithError(w, http.StatusInternalServerError, err.Error())
}

func mapBusinessErrorToHTTP(code string) int {
	switch code {
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeValidation:
		return http.StatusBadRequest
	case service.CodeForbidden:
		return http.StatusForbidden
	case service.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

package handlers

import (
	"net/http"

	"projectTracker/internal/logger"
)

type CatalogHandler struct {
	CatalogService CatalogService
}

func NewCatalogHandler(catalogService CatalogService) CatalogHandler {
	return CatalogHandler{
		CatalogService: catalogService,
	}
}

func (h *CatalogHandler) GetPriorities(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	priorities, err := h.CatalogService.GetAllPriorities(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, priorities)
}

func (h *CatalogHandler) GetConditions(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	conditions, err := h.CatalogService.GetAllConditions(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, conditions)
}

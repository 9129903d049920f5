package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary-backend/internal/domains/catalog"
	"locallibrary-backend/internal/shared/response"
	"locallibrary-backend/pkg/logger"
)

type CatalogHandler struct {
	service catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Index - GET /catalog
//
// Landing summary: five counts, fetched concurrently. Any failing
// count fails the page; no partial summary is shown.
func (h *CatalogHandler) Index(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		logger.Error("catalog summary", err)
		response.InternalServerError(c, "internal server error")
		return
	}

	response.Success(c, http.StatusOK, summary)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/internal/shared/response"
	"locallibrary-backend/pkg/logger"
)

type InstanceHandler struct {
	service bookinstance.Service
}

func NewInstanceHandler(svc bookinstance.Service) *InstanceHandler {
	return &InstanceHandler{service: svc}
}

// List - GET /catalog/bookinstances
func (h *InstanceHandler) List(c *gin.Context) {
	instances, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("book instance list", err)
		response.InternalServerError(c, "failed to list book instances")
		return
	}

	response.Success(c, http.StatusOK, instances)
}

// Detail - GET /catalog/bookinstances/:id
func (h *InstanceHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book instance id")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bookinstance.ErrInstanceNotFound) {
			response.NotFound(c, "book instance not found")
			return
		}
		logger.Error("book instance detail", err)
		response.InternalServerError(c, "internal server error")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// Create - POST /catalog/bookinstances (not implemented)
func (h *InstanceHandler) Create(c *gin.Context) {
	response.NotImplemented(c, "book instance create is not implemented")
}

// Update - POST /catalog/bookinstances/:id (not implemented)
func (h *InstanceHandler) Update(c *gin.Context) {
	response.NotImplemented(c, "book instance update is not implemented")
}

// Delete - POST /catalog/bookinstances/:id/delete (not implemented)
func (h *InstanceHandler) Delete(c *gin.Context) {
	response.NotImplemented(c, "book instance delete is not implemented")
}

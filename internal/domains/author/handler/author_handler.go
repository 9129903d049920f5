package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/shared/response"
	"locallibrary-backend/pkg/logger"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// List - GET /catalog/authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("author list", err)
		response.InternalServerError(c, "failed to list authors")
		return
	}

	response.Success(c, http.StatusOK, authors)
}

// Detail - GET /catalog/authors/:id
func (h *AuthorHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, "author not found")
			return
		}
		logger.Error("author detail", err)
		response.InternalServerError(c, "internal server error")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// Create - POST /catalog/authors (not implemented)
func (h *AuthorHandler) Create(c *gin.Context) {
	response.NotImplemented(c, "author create is not implemented")
}

// Update - POST /catalog/authors/:id (not implemented)
func (h *AuthorHandler) Update(c *gin.Context) {
	response.NotImplemented(c, "author update is not implemented")
}

// Delete - POST /catalog/authors/:id/delete (not implemented)
func (h *AuthorHandler) Delete(c *gin.Context) {
	response.NotImplemented(c, "author delete is not implemented")
}

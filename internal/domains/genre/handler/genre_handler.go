package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/internal/shared/forms"
	"locallibrary-backend/internal/shared/response"
	"locallibrary-backend/pkg/logger"
)

type GenreHandler struct {
	service genre.Service
}

func NewGenreHandler(svc genre.Service) *GenreHandler {
	return &GenreHandler{service: svc}
}

// List - GET /catalog/genres
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("genre list", err)
		response.InternalServerError(c, "failed to list genres")
		return
	}

	response.Success(c, http.StatusOK, genres)
}

// Detail - GET /catalog/genres/:id
func (h *GenreHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid genre id")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, genre.ErrGenreNotFound) {
			response.NotFound(c, "genre not found")
			return
		}
		logger.Error("genre detail", err)
		response.InternalServerError(c, "internal server error")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// NewForm - GET /catalog/genres/new
//
// The genre form has no reference data, so this never touches the
// store.
func (h *GenreHandler) NewForm(c *gin.Context) {
	response.Success(c, http.StatusOK, &genre.FormView{})
}

// Create - POST /catalog/genres
//
// A validation failure comes back as the form view with 200. A
// duplicate name resolves to the existing record's URL instead of
// creating a second row.
func (h *GenreHandler) Create(c *gin.Context) {
	values, err := forms.FromRequest(c.Request)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), values)
	if err != nil {
		logger.Error("genre create", err)
		response.InternalServerError(c, "internal server error")
		return
	}

	if result.Form != nil {
		response.Success(c, http.StatusOK, result.Form)
		return
	}

	response.Redirect(c, http.StatusCreated, result.Redirect)
}

// Update - POST /catalog/genres/:id (not implemented)
func (h *GenreHandler) Update(c *gin.Context) {
	response.NotImplemented(c, "genre update is not implemented")
}

// Delete - POST /catalog/genres/:id/delete (not implemented)
func (h *GenreHandler) Delete(c *gin.Context) {
	response.NotImplemented(c, "genre delete is not implemented")
}

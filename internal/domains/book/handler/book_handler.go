package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/internal/shared/forms"
	"locallibrary-backend/internal/shared/response"
	"locallibrary-backend/pkg/logger"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// List - GET /catalog/books
func (h *BookHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("book list", err)
		response.InternalServerError(c, "failed to list books")
		return
	}

	response.Success(c, http.StatusOK, items)
}

// Detail - GET /catalog/books/:id
func (h *BookHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "book detail")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// NewForm - GET /catalog/books/new
func (h *BookHandler) NewForm(c *gin.Context) {
	form, err := h.service.NewForm(c.Request.Context())
	if err != nil {
		h.renderError(c, err, "book create form")
		return
	}

	response.Success(c, http.StatusOK, form)
}

// Create - POST /catalog/books
//
// A validation failure is not an HTTP error: the form view comes back
// with 200 so the client can re-render it with the user's input intact.
func (h *BookHandler) Create(c *gin.Context) {
	values, err := forms.FromRequest(c.Request)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), values)
	if err != nil {
		h.renderError(c, err, "book create")
		return
	}

	if result.Form != nil {
		response.Success(c, http.StatusOK, result.Form)
		return
	}

	response.Redirect(c, http.StatusCreated, result.Redirect)
}

// EditForm - GET /catalog/books/:id/edit
func (h *BookHandler) EditForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	form, err := h.service.EditForm(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "book edit form")
		return
	}

	response.Success(c, http.StatusOK, form)
}

// Update - POST /catalog/books/:id
//
// The record identity comes from the path, never from the body.
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	values, err := forms.FromRequest(c.Request)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, values)
	if err != nil {
		h.renderError(c, err, "book update")
		return
	}

	if result.Form != nil {
		response.Success(c, http.StatusOK, result.Form)
		return
	}

	response.Redirect(c, http.StatusOK, result.Redirect)
}

// Delete - POST /catalog/books/:id/delete (not implemented)
func (h *BookHandler) Delete(c *gin.Context) {
	response.NotImplemented(c, "book delete is not implemented")
}

func (h *BookHandler) renderError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, author.ErrAuthorNotFound):
		response.NotFound(c, "author not found")
	case errors.Is(err, genre.ErrGenreNotFound):
		response.NotFound(c, "genre not found")
	default:
		logger.Error(op, err)
		response.InternalServerError(c, "internal server error")
	}
}

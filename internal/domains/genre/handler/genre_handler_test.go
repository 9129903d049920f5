package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/internal/shared/forms"
)

type stubGenreService struct {
	listFn   func(ctx context.Context) ([]genre.GenreResponse, error)
	detailFn func(ctx context.Context, id uuid.UUID) (*genre.DetailResponse, error)
	createFn func(ctx context.Context, values forms.Values) (*genre.SubmitResult, error)
}

func (s *stubGenreService) List(ctx context.Context) ([]genre.GenreResponse, error) {
	return s.listFn(ctx)
}

func (s *stubGenreService) Detail(ctx context.Context, id uuid.UUID) (*genre.DetailResponse, error) {
	return s.detailFn(ctx, id)
}

func (s *stubGenreService) Create(ctx context.Context, values forms.Values) (*genre.SubmitResult, error) {
	return s.createFn(ctx, values)
}

func setupRouter(svc genre.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewGenreHandler(svc)

	r := gin.New()
	genres := r.Group("/catalog/genres")
	{
		genres.GET("", h.List)
		genres.GET("/new", h.NewForm)
		genres.POST("", h.Create)
		genres.GET("/:id", h.Detail)
		genres.POST("/:id", h.Update)
		genres.POST("/:id/delete", h.Delete)
	}
	return r
}

func doRequest(r *gin.Engine, method, path, contentType, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenreHandlerList(t *testing.T) {
	t.Run("returns the genre list", func(t *testing.T) {
		svc := &stubGenreService{
			listFn: func(ctx context.Context) ([]genre.GenreResponse, error) {
				return []genre.GenreResponse{{ID: uuid.New(), Name: "Fantasy"}}, nil
			},
		}

		w := doRequest(setupRouter(svc), http.MethodGet, "/catalog/genres", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Success bool                  `json:"success"`
			Data    []genre.GenreResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Fantasy", body.Data[0].Name)
	})

	t.Run("store failure answers 500", func(t *testing.T) {
		svc := &stubGenreService{
			listFn: func(ctx context.Context) ([]genre.GenreResponse, error) {
				return nil, errors.New("store down")
			},
		}

		w := doRequest(setupRouter(svc), http.MethodGet, "/catalog/genres", "", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGenreHandlerDetail(t *testing.T) {
	t.Run("malformed id answers 400", func(t *testing.T) {
		svc := &stubGenreService{}

		w := doRequest(setupRouter(svc), http.MethodGet, "/catalog/genres/not-a-uuid", "", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id answers 404", func(t *testing.T) {
		svc := &stubGenreService{
			detailFn: func(ctx context.Context, id uuid.UUID) (*genre.DetailResponse, error) {
				return nil, genre.ErrGenreNotFound
			},
		}

		w := doRequest(setupRouter(svc), http.MethodGet, "/catalog/genres/"+uuid.NewString(), "", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGenreHandlerCreate(t *testing.T) {
	t.Run("form submission redirects on success", func(t *testing.T) {
		var seen forms.Values
		svc := &stubGenreService{
			createFn: func(ctx context.Context, values forms.Values) (*genre.SubmitResult, error) {
				seen = values
				return &genre.SubmitResult{Redirect: "/catalog/genres/abc"}, nil
			},
		}

		w := doRequest(setupRouter(svc), http.MethodPost, "/catalog/genres",
			"application/x-www-form-urlencoded", "name=Fantasy")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Fantasy", seen.Text("name"))

		var body struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "/catalog/genres/abc", body.Data["redirect"])
	})

	t.Run("json submission is accepted too", func(t *testing.T) {
		svc := &stubGenreService{
			createFn: func(ctx context.Context, values forms.Values) (*genre.SubmitResult, error) {
				assert.Equal(t, "Fantasy", values.Text("name"))
				return &genre.SubmitResult{Redirect: "/catalog/genres/abc"}, nil
			},
		}

		w := doRequest(setupRouter(svc), http.MethodPost, "/catalog/genres",
			"application/json", `{"name":"Fantasy"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation failure re-renders the form with 200", func(t *testing.T) {
		svc := &stubGenreService{
			createFn: func(ctx context.Context, values forms.Values) (*genre.SubmitResult, error) {
				return &genre.SubmitResult{Form: &genre.FormView{
					Errors: []string{"Name must not be empty."},
				}}, nil
			},
		}

		w := doRequest(setupRouter(svc), http.MethodPost, "/catalog/genres",
			"application/x-www-form-urlencoded", "name=")

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data genre.FormView `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"Name must not be empty."}, body.Data.Errors)
	})

	t.Run("unreadable body answers 400", func(t *testing.T) {
		svc := &stubGenreService{}

		w := doRequest(setupRouter(svc), http.MethodPost, "/catalog/genres",
			"application/json", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenreHandlerStubs(t *testing.T) {
	svc := &stubGenreService{}
	r := setupRouter(svc)
	id := uuid.NewString()

	t.Run("update answers 501", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/catalog/genres/"+id,
			"application/x-www-form-urlencoded", "name=Fantasy")

		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})

	t.Run("delete answers 501", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/catalog/genres/"+id+"/delete", "", "")

		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})

	t.Run("new form answers an empty view", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/catalog/genres/new", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

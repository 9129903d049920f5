package book

import (
	"context"

	"github.com/google/uuid"

	"locallibrary-backend/internal/shared/forms"
)

// Service is the business contract for books, including the authoring
// flow for create and update submissions.
type Service interface {
	List(ctx context.Context) ([]ListItem, error)

	// Detail joins the book with its copies.
	Detail(ctx context.Context, id uuid.UUID) (*DetailResponse, error)

	// NewForm assembles the create-form view model: fresh author and
	// genre reference lists, fetched concurrently.
	NewForm(ctx context.Context) (*FormView, error)

	// Create runs the authoring flow for a new book: normalize,
	// validate, then either re-render the form (with fresh reference
	// data and selection markers) or persist and redirect.
	Create(ctx context.Context, values forms.Values) (*SubmitResult, error)

	// EditForm assembles the update-form view model: the book plus
	// reference lists, genres marked selected.
	EditForm(ctx context.Context, id uuid.UUID) (*FormView, error)

	// Update is Create for a pre-existing identity. The identity comes
	// from the request path, never from the submitted body.
	Update(ctx context.Context, id uuid.UUID, values forms.Values) (*SubmitResult, error)
}

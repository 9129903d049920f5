package genre

import (
	"context"

	"github.com/google/uuid"

	"locallibrary-backend/internal/shared/forms"
)

// Service is the business contract for genres.
type Service interface {
	List(ctx context.Context) ([]GenreResponse, error)

	// Detail joins the genre with every book filed under it.
	Detail(ctx context.Context, id uuid.UUID) (*DetailResponse, error)

	// Create runs the authoring flow: validate, then either re-render
	// the form or resolve the submission through the dedup lookup.
	// A second submission with an existing name never creates a
	// duplicate; it redirects to the pre-existing record.
	Create(ctx context.Context, values forms.Values) (*SubmitResult, error)
}

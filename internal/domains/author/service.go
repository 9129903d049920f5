package author

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business contract for authors. Authoring flows for
// authors are not implemented; the HTTP layer answers 501 for them.
type Service interface {
	List(ctx context.Context) ([]AuthorResponse, error)

	// Detail joins the author with every book they wrote.
	Detail(ctx context.Context, id uuid.UUID) (*DetailResponse, error)
}

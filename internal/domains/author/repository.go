package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the store contract for authors.
type Repository interface {
	// List returns every author ordered by family name.
	List(ctx context.Context) ([]Author, error)

	// GetByID returns ErrAuthorNotFound when no record matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	Count(ctx context.Context) (int64, error)
}

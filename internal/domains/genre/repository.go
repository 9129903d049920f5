package genre

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the store contract for genres.
type Repository interface {
	// List returns every genre ordered by name.
	List(ctx context.Context) ([]Genre, error)

	// GetByID returns ErrGenreNotFound when no record matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)

	// GetByName looks a genre up by its natural key (exact match).
	// Returns ErrGenreNotFound when no record matches.
	GetByName(ctx context.Context, name string) (*Genre, error)

	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, entity *Genre) (*Genre, error)
}

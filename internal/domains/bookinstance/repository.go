package bookinstance

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the store contract for book copies.
type Repository interface {
	// List returns every copy with its book title, ordered by title.
	List(ctx context.Context) ([]ListItem, error)

	// GetByID returns ErrInstanceNotFound when no record matches.
	GetByID(ctx context.Context, id uuid.UUID) (*ListItem, error)

	ListByBook(ctx context.Context, bookID uuid.UUID) ([]Instance, error)

	Count(ctx context.Context) (int64, error)

	CountByStatus(ctx context.Context, status string) (int64, error)
}

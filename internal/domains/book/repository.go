package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the store contract for books.
type Repository interface {
	// List returns every book as a list row, ordered by title.
	List(ctx context.Context) ([]ListItem, error)

	// GetByID returns ErrBookNotFound when no record matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// GetDetail resolves the author name and genre names alongside the
	// book. Returns ErrBookNotFound when no record matches.
	GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error)

	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]Book, error)

	ListByGenre(ctx context.Context, genreID uuid.UUID) ([]Book, error)

	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, entity *Book) (*Book, error)

	// Update replaces the five authored fields of the record with the
	// given identity. Returns ErrBookNotFound when no record matches.
	Update(ctx context.Context, id uuid.UUID, entity *Book) (*Book, error)
}

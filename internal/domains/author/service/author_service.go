package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/shared/fetch"
)

type authorService struct {
	authors author.Repository
	books   book.Repository
}

func NewAuthorService(authors author.Repository, books book.Repository) author.Service {
	return &authorService{
		authors: authors,
		books:   books,
	}
}

func (s *authorService) List(ctx context.Context) ([]author.AuthorResponse, error) {
	all, err := s.authors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return author.ToResponses(all), nil
}

// Detail fetches the author and their books concurrently.
func (s *authorService) Detail(ctx context.Context, id uuid.UUID) (*author.DetailResponse, error) {
	results, err := fetch.Join(ctx, map[string]fetch.Task{
		"author": func(ctx context.Context) (any, error) {
			return s.authors.GetByID(ctx, id)
		},
		"author_books": func(ctx context.Context) (any, error) {
			return s.books.ListByAuthor(ctx, id)
		},
	})
	if err != nil {
		return nil, err
	}

	found := fetch.Get[*author.Author](results, "author")
	books := fetch.Get[[]book.Book](results, "author_books")

	summaries := make([]author.BookSummary, len(books))
	for i := range books {
		summaries[i] = author.BookSummary{
			ID:      books[i].ID,
			Title:   books[i].Title,
			Summary: books[i].Summary,
			URL:     books[i].URL(),
		}
	}

	return &author.DetailResponse{
		Author: found.ToResponse(),
		Books:  summaries,
	}, nil
}

package service

import (
	"context"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/internal/domains/catalog"
	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/internal/shared/fetch"
)

type catalogService struct {
	books     book.Repository
	instances bookinstance.Repository
	authors   author.Repository
	genres    genre.Repository
}

func NewCatalogService(
	books book.Repository,
	instances bookinstance.Repository,
	authors author.Repository,
	genres genre.Repository,
) catalog.Service {
	return &catalogService{
		books:     books,
		instances: instances,
		authors:   authors,
		genres:    genres,
	}
}

// Summary runs all five counts concurrently; any failing count fails
// the summary.
func (s *catalogService) Summary(ctx context.Context) (*catalog.Summary, error) {
	results, err := fetch.Join(ctx, map[string]fetch.Task{
		"book_count": func(ctx context.Context) (any, error) {
			return s.books.Count(ctx)
		},
		"book_instance_count": func(ctx context.Context) (any, error) {
			return s.instances.Count(ctx)
		},
		"book_instance_available_count": func(ctx context.Context) (any, error) {
			return s.instances.CountByStatus(ctx, bookinstance.StatusAvailable)
		},
		"author_count": func(ctx context.Context) (any, error) {
			return s.authors.Count(ctx)
		},
		"genre_count": func(ctx context.Context) (any, error) {
			return s.genres.Count(ctx)
		},
	})
	if err != nil {
		return nil, err
	}

	return &catalog.Summary{
		BookCount:              fetch.Get[int64](results, "book_count"),
		BookInstanceCount:      fetch.Get[int64](results, "book_instance_count"),
		AvailableInstanceCount: fetch.Get[int64](results, "book_instance_available_count"),
		AuthorCount:            fetch.Get[int64](results, "author_count"),
		GenreCount:             fetch.Get[int64](results, "genre_count"),
	}, nil
}

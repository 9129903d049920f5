package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/internal/shared/fetch"
	"locallibrary-backend/internal/shared/forms"
)

type genreService struct {
	genres genre.Repository
	books  book.Repository
}

func NewGenreService(genres genre.Repository, books book.Repository) genre.Service {
	return &genreService{
		genres: genres,
		books:  books,
	}
}

func (s *genreService) List(ctx context.Context) ([]genre.GenreResponse, error) {
	all, err := s.genres.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genre.ToResponses(all), nil
}

// Detail fetches the genre and its books concurrently.
func (s *genreService) Detail(ctx context.Context, id uuid.UUID) (*genre.DetailResponse, error) {
	results, err := fetch.Join(ctx, map[string]fetch.Task{
		"genre": func(ctx context.Context) (any, error) {
			return s.genres.GetByID(ctx, id)
		},
		"genre_books": func(ctx context.Context) (any, error) {
			return s.books.ListByGenre(ctx, id)
		},
	})
	if err != nil {
		return nil, err
	}

	found := fetch.Get[*genre.Genre](results, "genre")
	books := fetch.Get[[]book.Book](results, "genre_books")

	summaries := make([]genre.BookSummary, len(books))
	for i := range books {
		summaries[i] = genre.BookSummary{
			ID:      books[i].ID,
			Title:   books[i].Title,
			Summary: books[i].Summary,
			URL:     books[i].URL(),
		}
	}

	return &genre.DetailResponse{
		Genre: found.ToResponse(),
		Books: summaries,
	}, nil
}

// Create is the genre authoring flow. Invalid submissions come straight
// back as a form view without touching the store. Valid ones pass
// through the dedup lookup: an existing record with the same name wins
// and the candidate is discarded.
//
// The lookup and the conditional insert are sequential, not atomic; two
// concurrent submissions of the same name can still race to two rows.
func (s *genreService) Create(ctx context.Context, values forms.Values) (*genre.SubmitResult, error) {
	candidate, messages := genre.ParseForm(values)

	if len(messages) > 0 {
		return &genre.SubmitResult{
			Form: &genre.FormView{
				Name:   candidate.Name,
				Errors: messages,
			},
		}, nil
	}

	existing, err := s.genres.GetByName(ctx, candidate.Name)
	if err != nil && !errors.Is(err, genre.ErrGenreNotFound) {
		return nil, fmt.Errorf("genre dedup lookup: %w", err)
	}
	if existing != nil {
		return &genre.SubmitResult{Redirect: existing.URL()}, nil
	}

	created, err := s.genres.Create(ctx, genre.NewGenre(candidate.Name))
	if err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}

	return &genre.SubmitResult{Redirect: created.URL()}, nil
}

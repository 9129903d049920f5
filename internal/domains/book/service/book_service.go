package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/internal/shared/fetch"
	"locallibrary-backend/internal/shared/forms"
)

type bookService struct {
	books     book.Repository
	authors   author.Repository
	genres    genre.Repository
	instances bookinstance.Repository
}

func NewBookService(
	books book.Repository,
	authors author.Repository,
	genres genre.Repository,
	instances bookinstance.Repository,
) book.Service {
	return &bookService{
		books:     books,
		authors:   authors,
		genres:    genres,
		instances: instances,
	}
}

func (s *bookService) List(ctx context.Context) ([]book.ListItem, error) {
	items, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return items, nil
}

// Detail fetches the book and its copies concurrently. A failure on
// either lookup fails the whole request; there is no partial render.
func (s *bookService) Detail(ctx context.Context, id uuid.UUID) (*book.DetailResponse, error) {
	results, err := fetch.Join(ctx, map[string]fetch.Task{
		"book": func(ctx context.Context) (any, error) {
			return s.books.GetDetail(ctx, id)
		},
		"book_instances": func(ctx context.Context) (any, error) {
			return s.instances.ListByBook(ctx, id)
		},
	})
	if err != nil {
		return nil, err
	}

	detail := fetch.Get[*book.Detail](results, "book")
	copies := fetch.Get[[]bookinstance.Instance](results, "book_instances")

	summaries := make([]book.InstanceSummary, len(copies))
	for i := range copies {
		summaries[i] = book.InstanceSummary{
			ID:      copies[i].ID,
			Imprint: copies[i].Imprint,
			Status:  copies[i].Status,
			URL:     copies[i].URL(),
		}
		if copies[i].DueBack != nil {
			summaries[i].DueBack = copies[i].DueBack.Format("2006-01-02")
		}
	}

	return &book.DetailResponse{
		Book:       detail.Book.ToResponse(),
		AuthorName: detail.AuthorName,
		GenreNames: detail.GenreNames,
		Instances:  summaries,
	}, nil
}

// NewForm assembles the create form: both reference lists, fetched
// concurrently.
func (s *bookService) NewForm(ctx context.Context) (*book.FormView, error) {
	authors, genres, err := s.referenceData(ctx)
	if err != nil {
		return nil, err
	}

	return &book.FormView{
		Authors: author.ToResponses(authors),
		Genres:  genre.MarkSelected(genres, nil),
	}, nil
}

func (s *bookService) Create(ctx context.Context, values forms.Values) (*book.SubmitResult, error) {
	candidate, messages := book.ParseForm(values)

	if len(messages) > 0 {
		return s.invalidSubmission(ctx, candidate, messages)
	}

	now := time.Now().UTC()
	created, err := s.books.Create(ctx, &book.Book{
		ID:        uuid.New(),
		Title:     candidate.Title,
		AuthorID:  candidate.AuthorID,
		Summary:   candidate.Summary,
		ISBN:      candidate.ISBN,
		GenreIDs:  candidate.GenreIDs,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return &book.SubmitResult{Redirect: created.URL()}, nil
}

// EditForm assembles the update form: the book and both reference
// lists, fetched concurrently, with the book's genres marked selected.
func (s *bookService) EditForm(ctx context.Context, id uuid.UUID) (*book.FormView, error) {
	results, err := fetch.Join(ctx, map[string]fetch.Task{
		"book": func(ctx context.Context) (any, error) {
			return s.books.GetByID(ctx, id)
		},
		"authors": func(ctx context.Context) (any, error) {
			return s.authors.List(ctx)
		},
		"genres": func(ctx context.Context) (any, error) {
			return s.genres.List(ctx)
		},
	})
	if err != nil {
		return nil, err
	}

	found := fetch.Get[*book.Book](results, "book")
	authors := fetch.Get[[]author.Author](results, "authors")
	genres := fetch.Get[[]genre.Genre](results, "genres")

	return &book.FormView{
		Book: &book.Candidate{
			ID:       found.ID,
			Title:    found.Title,
			AuthorID: found.AuthorID,
			Summary:  found.Summary,
			ISBN:     found.ISBN,
			GenreIDs: found.GenreIDs,
		},
		Authors: author.ToResponses(authors),
		Genres:  genre.MarkSelected(genres, found.GenreIDs),
	}, nil
}

// Update persists a full replace of the five authored fields. The
// identity always comes from the path parameter, so a submission cannot
// retarget another record.
func (s *bookService) Update(ctx context.Context, id uuid.UUID, values forms.Values) (*book.SubmitResult, error) {
	candidate, messages := book.ParseForm(values)
	candidate.ID = id

	if len(messages) > 0 {
		return s.invalidSubmission(ctx, candidate, messages)
	}

	updated, err := s.books.Update(ctx, id, &book.Book{
		ID:        id,
		Title:     candidate.Title,
		AuthorID:  candidate.AuthorID,
		Summary:   candidate.Summary,
		ISBN:      candidate.ISBN,
		GenreIDs:  candidate.GenreIDs,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	return &book.SubmitResult{Redirect: updated.URL()}, nil
}

// invalidSubmission rebuilds the form view for a failed submission:
// the candidate is kept as entered, reference data is re-fetched, and
// the candidate's genres are marked selected. Nothing is persisted. A
// store failure here overrides the validation view.
func (s *bookService) invalidSubmission(ctx context.Context, candidate *book.Candidate, messages []string) (*book.SubmitResult, error) {
	authors, genres, err := s.referenceData(ctx)
	if err != nil {
		return nil, err
	}

	return &book.SubmitResult{
		Form: &book.FormView{
			Book:    candidate,
			Authors: author.ToResponses(authors),
			Genres:  genre.MarkSelected(genres, candidate.GenreIDs),
			Errors:  messages,
		},
	}, nil
}

// referenceData fetches both reference lists concurrently.
func (s *bookService) referenceData(ctx context.Context) ([]author.Author, []genre.Genre, error) {
	results, err := fetch.Join(ctx, map[string]fetch.Task{
		"authors": func(ctx context.Context) (any, error) {
			return s.authors.List(ctx)
		},
		"genres": func(ctx context.Context) (any, error) {
			return s.genres.List(ctx)
		},
	})
	if err != nil {
		return nil, nil, err
	}

	return fetch.Get[[]author.Author](results, "authors"),
		fetch.Get[[]genre.Genre](results, "genres"),
		nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/internal/shared/forms"
)

type fakeGenreRepo struct {
	genres    []genre.Genre
	created   []*genre.Genre
	lookupErr error
	createErr error
	lookups   int
}

func (f *fakeGenreRepo) List(ctx context.Context) ([]genre.Genre, error) {
	return f.genres, nil
}

func (f *fakeGenreRepo) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	for i := range f.genres {
		if f.genres[i].ID == id {
			return &f.genres[i], nil
		}
	}
	return nil, genre.ErrGenreNotFound
}

func (f *fakeGenreRepo) GetByName(ctx context.Context, name string) (*genre.Genre, error) {
	f.lookups++
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for i := range f.genres {
		if f.genres[i].Name == name {
			return &f.genres[i], nil
		}
	}
	return nil, genre.ErrGenreNotFound
}

func (f *fakeGenreRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.genres)), nil
}

func (f *fakeGenreRepo) Create(ctx context.Context, entity *genre.Genre) (*genre.Genre, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, entity)
	f.genres = append(f.genres, *entity)
	return entity, nil
}

type fakeBookRepo struct {
	byGenre map[uuid.UUID][]book.Book
	listErr error
}

func (f *fakeBookRepo) List(ctx context.Context) ([]book.ListItem, error) {
	return nil, nil
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (f *fakeBookRepo) GetDetail(ctx context.Context, id uuid.UUID) (*book.Detail, error) {
	return nil, book.ErrBookNotFound
}

func (f *fakeBookRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	return nil, nil
}

func (f *fakeBookRepo) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]book.Book, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byGenre[genreID], nil
}

func (f *fakeBookRepo) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeBookRepo) Create(ctx context.Context, entity *book.Book) (*book.Book, error) {
	return entity, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, id uuid.UUID, entity *book.Book) (*book.Book, error) {
	return entity, nil
}

func TestGenreCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("new name is persisted and redirected to", func(t *testing.T) {
		genres := &fakeGenreRepo{}
		svc := NewGenreService(genres, &fakeBookRepo{})

		result, err := svc.Create(ctx, forms.Values{"name": " Fantasy "})

		require.NoError(t, err)
		require.Len(t, genres.created, 1)
		assert.Equal(t, "Fantasy", genres.created[0].Name)
		assert.Equal(t, genres.created[0].URL(), result.Redirect)
		assert.Nil(t, result.Form)
	})

	t.Run("existing name redirects without creating", func(t *testing.T) {
		existing := genre.Genre{ID: uuid.New(), Name: "Fantasy"}
		genres := &fakeGenreRepo{genres: []genre.Genre{existing}}
		svc := NewGenreService(genres, &fakeBookRepo{})

		result, err := svc.Create(ctx, forms.Values{"name": "Fantasy"})

		require.NoError(t, err)
		assert.Empty(t, genres.created)
		assert.Equal(t, existing.URL(), result.Redirect)
	})

	t.Run("resubmission is idempotent", func(t *testing.T) {
		genres := &fakeGenreRepo{}
		svc := NewGenreService(genres, &fakeBookRepo{})

		first, err := svc.Create(ctx, forms.Values{"name": "Poetry"})
		require.NoError(t, err)

		second, err := svc.Create(ctx, forms.Values{"name": "Poetry"})
		require.NoError(t, err)

		assert.Len(t, genres.created, 1)
		assert.Equal(t, first.Redirect, second.Redirect)
	})

	t.Run("invalid submission never touches the store", func(t *testing.T) {
		genres := &fakeGenreRepo{}
		svc := NewGenreService(genres, &fakeBookRepo{})

		result, err := svc.Create(ctx, forms.Values{"name": "   "})

		require.NoError(t, err)
		assert.Zero(t, genres.lookups)
		assert.Empty(t, genres.created)
		require.NotNil(t, result.Form)
		assert.Equal(t, []string{"Name must not be empty."}, result.Form.Errors)
		assert.Empty(t, result.Redirect)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		boom := errors.New("store down")
		genres := &fakeGenreRepo{lookupErr: boom}
		svc := NewGenreService(genres, &fakeBookRepo{})

		_, err := svc.Create(ctx, forms.Values{"name": "Fantasy"})

		assert.ErrorIs(t, err, boom)
		assert.Empty(t, genres.created)
	})

	t.Run("create failure propagates", func(t *testing.T) {
		boom := errors.New("insert failed")
		genres := &fakeGenreRepo{createErr: boom}
		svc := NewGenreService(genres, &fakeBookRepo{})

		_, err := svc.Create(ctx, forms.Values{"name": "Fantasy"})

		assert.ErrorIs(t, err, boom)
	})
}

func TestGenreDetail(t *testing.T) {
	ctx := context.Background()

	g := genre.Genre{ID: uuid.New(), Name: "Fantasy"}
	filed := book.Book{ID: uuid.New(), Title: "The Hobbit", Summary: "There and back again."}

	t.Run("joins genre with its books", func(t *testing.T) {
		genres := &fakeGenreRepo{genres: []genre.Genre{g}}
		books := &fakeBookRepo{byGenre: map[uuid.UUID][]book.Book{
			g.ID: {filed},
		}}
		svc := NewGenreService(genres, books)

		detail, err := svc.Detail(ctx, g.ID)

		require.NoError(t, err)
		assert.Equal(t, "Fantasy", detail.Genre.Name)
		require.Len(t, detail.Books, 1)
		assert.Equal(t, "The Hobbit", detail.Books[0].Title)
		assert.Equal(t, filed.URL(), detail.Books[0].URL)
	})

	t.Run("unknown genre fails the whole request", func(t *testing.T) {
		svc := NewGenreService(&fakeGenreRepo{}, &fakeBookRepo{})

		_, err := svc.Detail(ctx, uuid.New())

		assert.ErrorIs(t, err, genre.ErrGenreNotFound)
	})

	t.Run("book lookup failure fails the whole request", func(t *testing.T) {
		boom := errors.New("store down")
		genres := &fakeGenreRepo{genres: []genre.Genre{g}}
		svc := NewGenreService(genres, &fakeBookRepo{listErr: boom})

		_, err := svc.Detail(ctx, g.ID)

		assert.ErrorIs(t, err, boom)
	})
}

func TestGenreList(t *testing.T) {
	genres := &fakeGenreRepo{genres: []genre.Genre{
		{ID: uuid.New(), Name: "Fantasy"},
		{ID: uuid.New(), Name: "History"},
	}}
	svc := NewGenreService(genres, &fakeBookRepo{})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Fantasy", got[0].Name)
	assert.Equal(t, "History", got[1].Name)
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary-backend/internal/domains/bookinstance"
)

type fakeInstanceRepo struct {
	items []bookinstance.ListItem
}

func (f *fakeInstanceRepo) List(ctx context.Context) ([]bookinstance.ListItem, error) {
	return f.items, nil
}

func (f *fakeInstanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*bookinstance.ListItem, error) {
	for i := range f.items {
		if f.items[i].Instance.ID == id {
			return &f.items[i], nil
		}
	}
	return nil, bookinstance.ErrInstanceNotFound
}

func (f *fakeInstanceRepo) ListByBook(ctx context.Context, bookID uuid.UUID) ([]bookinstance.Instance, error) {
	return nil, nil
}

func (f *fakeInstanceRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeInstanceRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for i := range f.items {
		if f.items[i].Instance.Status == status {
			n++
		}
	}
	return n, nil
}

func TestInstanceList(t *testing.T) {
	item := bookinstance.ListItem{
		Instance: bookinstance.Instance{
			ID:      uuid.New(),
			BookID:  uuid.New(),
			Imprint: "London Gollancz, 2014.",
			Status:  bookinstance.StatusAvailable,
		},
		BookTitle: "The Name of the Wind",
	}
	svc := NewInstanceService(&fakeInstanceRepo{items: []bookinstance.ListItem{item}})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "The Name of the Wind", got[0].BookTitle)
	assert.Equal(t, bookinstance.StatusAvailable, got[0].Status)
	assert.Equal(t, item.Instance.URL(), got[0].URL)
}

func TestInstanceDetail(t *testing.T) {
	item := bookinstance.ListItem{
		Instance: bookinstance.Instance{
			ID:      uuid.New(),
			BookID:  uuid.New(),
			Imprint: "First edition",
			Status:  bookinstance.StatusLoaned,
		},
		BookTitle: "Foundation",
	}
	repo := &fakeInstanceRepo{items: []bookinstance.ListItem{item}}
	svc := NewInstanceService(repo)

	t.Run("resolves the copy with its title", func(t *testing.T) {
		got, err := svc.Detail(context.Background(), item.Instance.ID)

		require.NoError(t, err)
		assert.Equal(t, "Foundation", got.BookTitle)
		assert.Equal(t, bookinstance.StatusLoaned, got.Status)
	})

	t.Run("unknown copy propagates not found", func(t *testing.T) {
		_, err := svc.Detail(context.Background(), uuid.New())

		assert.ErrorIs(t, err, bookinstance.ErrInstanceNotFound)
	})
}

func TestInstanceAvailable(t *testing.T) {
	available := bookinstance.Instance{Status: bookinstance.StatusAvailable}
	loaned := bookinstance.Instance{Status: bookinstance.StatusLoaned}

	assert.True(t, available.Available())
	assert.False(t, loaned.Available())
}

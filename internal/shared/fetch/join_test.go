package fetch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	t.Run("collects every result by name", func(t *testing.T) {
		results, err := Join(context.Background(), map[string]Task{
			"count": func(ctx context.Context) (any, error) { return int64(7), nil },
			"label": func(ctx context.Context) (any, error) { return "fiction", nil },
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), Get[int64](results, "count"))
		assert.Equal(t, "fiction", Get[string](results, "label"))
	})

	t.Run("first error wins and no partial map escapes", func(t *testing.T) {
		boom := errors.New("store unavailable")

		results, err := Join(context.Background(), map[string]Task{
			"ok":   func(ctx context.Context) (any, error) { return 1, nil },
			"bad":  func(ctx context.Context) (any, error) { return nil, boom },
			"ok2":  func(ctx context.Context) (any, error) { return 2, nil },
			"bad2": func(ctx context.Context) (any, error) { return nil, boom },
		})

		assert.ErrorIs(t, err, boom)
		assert.Nil(t, results)
	})

	t.Run("returns before slow siblings finish", func(t *testing.T) {
		boom := errors.New("fast failure")
		release := make(chan struct{})
		slowDone := make(chan struct{})

		start := time.Now()
		_, err := Join(context.Background(), map[string]Task{
			"fast": func(ctx context.Context) (any, error) { return nil, boom },
			"slow": func(ctx context.Context) (any, error) {
				<-release
				close(slowDone)
				return "late", nil
			},
		})
		elapsed := time.Since(start)

		assert.ErrorIs(t, err, boom)
		assert.Less(t, elapsed, time.Second)

		// Unblock the straggler and make sure it can still finish
		// into buffered capacity rather than leaking.
		close(release)
		select {
		case <-slowDone:
		case <-time.After(time.Second):
			t.Fatal("slow task never completed")
		}
	})

	t.Run("empty task set", func(t *testing.T) {
		results, err := Join(context.Background(), map[string]Task{})

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestGet(t *testing.T) {
	r := Results{"n": 42}

	t.Run("typed access", func(t *testing.T) {
		assert.Equal(t, 42, Get[int](r, "n"))
	})

	t.Run("unknown name panics", func(t *testing.T) {
		assert.Panics(t, func() { Get[int](r, "missing") })
	})

	t.Run("wrong type panics", func(t *testing.T) {
		assert.Panics(t, func() { Get[string](r, "n") })
	})
}

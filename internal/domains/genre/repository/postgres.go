package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/pkg/cache"
	"locallibrary-backend/pkg/logger"
)

const (
	listCacheKey = "genres:all"
	listCacheTTL = 5 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) genre.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// List is the reference-data hot path for book forms, so it reads
// through the cache. Create invalidates the key.
func (r *postgresRepository) List(ctx context.Context) ([]genre.Genre, error) {
	if r.cache != nil {
		var cached []genre.Genre
		found, err := r.cache.Get(ctx, listCacheKey, &cached)
		if err != nil {
			logger.Error("genre list cache read", err)
		}
		if found {
			return cached, nil
		}
	}

	const query = `
		SELECT id, name, created_at, updated_at
		FROM genres
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	var genres []genre.Genre
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read genres: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, listCacheKey, genres, listCacheTTL); err != nil {
			logger.Error("genre list cache write", err)
		}
	}

	return genres, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM genres
		WHERE id = $1
	`

	var g genre.Genre
	err := r.pool.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, genre.ErrGenreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}

	return &g, nil
}

// GetByName matches the natural key exactly. There is no unique index
// on name; the dedup flow in the service layer relies on this lookup.
func (r *postgresRepository) GetByName(ctx context.Context, name string) (*genre.Genre, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM genres
		WHERE name = $1
		LIMIT 1
	`

	var g genre.Genre
	err := r.pool.QueryRow(ctx, query, name).Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, genre.ErrGenreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get genre by name: %w", err)
	}

	return &g, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *genre.Genre) (*genre.Genre, error) {
	const query = `
		INSERT INTO genres (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, created_at, updated_at
	`

	created := &genre.Genre{}
	err := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Name, entity.CreatedAt, entity.UpdatedAt,
	).Scan(&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, listCacheKey); err != nil {
			logger.Error("genre list cache invalidate", err)
		}
	}

	return created, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/pkg/cache"
	"locallibrary-backend/pkg/logger"
)

const (
	listCacheKey = "authors:all"
	listCacheTTL = 5 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// List is the reference-data hot path for book forms, so it reads
// through the cache.
func (r *postgresRepository) List(ctx context.Context) ([]author.Author, error) {
	if r.cache != nil {
		var cached []author.Author
		found, err := r.cache.Get(ctx, listCacheKey, &cached)
		if err != nil {
			logger.Error("author list cache read", err)
		}
		if found {
			return cached, nil
		}
	}

	const query = `
		SELECT id, first_name, family_name, date_of_birth, date_of_death,
		       created_at, updated_at
		FROM authors
		ORDER BY family_name, first_name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(
			&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read authors: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, listCacheKey, authors, listCacheTTL); err != nil {
			logger.Error("author list cache write", err)
		}
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	const query = `
		SELECT id, first_name, family_name, date_of_birth, date_of_death,
		       created_at, updated_at
		FROM authors
		WHERE id = $1
	`

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, author.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return count, nil
}

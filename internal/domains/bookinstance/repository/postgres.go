package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"locallibrary-backend/internal/domains/bookinstance"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) bookinstance.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]bookinstance.ListItem, error) {
	const query = `
		SELECT i.id, i.book_id, i.imprint, i.status, i.due_back,
		       i.created_at, i.updated_at, b.title
		FROM book_instances i
		JOIN books b ON b.id = i.book_id
		ORDER BY b.title, i.imprint
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list book instances: %w", err)
	}
	defer rows.Close()

	var items []bookinstance.ListItem
	for rows.Next() {
		var item bookinstance.ListItem
		if err := rows.Scan(
			&item.Instance.ID, &item.Instance.BookID, &item.Instance.Imprint,
			&item.Instance.Status, &item.Instance.DueBack,
			&item.Instance.CreatedAt, &item.Instance.UpdatedAt,
			&item.BookTitle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book instance: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read book instances: %w", err)
	}

	return items, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*bookinstance.ListItem, error) {
	const query = `
		SELECT i.id, i.book_id, i.imprint, i.status, i.due_back,
		       i.created_at, i.updated_at, b.title
		FROM book_instances i
		JOIN books b ON b.id = i.book_id
		WHERE i.id = $1
	`

	var item bookinstance.ListItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.Instance.ID, &item.Instance.BookID, &item.Instance.Imprint,
		&item.Instance.Status, &item.Instance.DueBack,
		&item.Instance.CreatedAt, &item.Instance.UpdatedAt,
		&item.BookTitle,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, bookinstance.ErrInstanceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book instance: %w", err)
	}

	return &item, nil
}

func (r *postgresRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]bookinstance.Instance, error) {
	const query = `
		SELECT id, book_id, imprint, status, due_back, created_at, updated_at
		FROM book_instances
		WHERE book_id = $1
		ORDER BY imprint
	`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list instances by book: %w", err)
	}
	defer rows.Close()

	instances := []bookinstance.Instance{}
	for rows.Next() {
		var i bookinstance.Instance
		if err := rows.Scan(
			&i.ID, &i.BookID, &i.Imprint, &i.Status, &i.DueBack,
			&i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan instance: %w", err)
		}
		instances = append(instances, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read instances: %w", err)
	}

	return instances, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM book_instances`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count book instances: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM book_instances WHERE status = $1`, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count book instances by status: %w", err)
	}
	return count, nil
}

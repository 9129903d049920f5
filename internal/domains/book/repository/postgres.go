package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"locallibrary-backend/internal/domains/book"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

// genre_ids is stored as text[]; pq.Array handles the scan and the
// bind.
func idsToStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func stringsToIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("malformed genre id %q: %w", s, err)
		}
		out[i] = id
	}
	return out, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]book.ListItem, error) {
	const query = `
		SELECT b.id, b.title, a.family_name, a.first_name
		FROM books b
		JOIN authors a ON a.id = b.author_id
		ORDER BY b.title
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var items []book.ListItem
	for rows.Next() {
		var item book.ListItem
		var familyName, firstName string
		if err := rows.Scan(&item.ID, &item.Title, &familyName, &firstName); err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		item.AuthorName = fmt.Sprintf("%s, %s", familyName, firstName)
		item.URL = (&book.Book{ID: item.ID}).URL()
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	return items, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	const query = `
		SELECT id, title, author_id, summary, isbn, genre_ids, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	return r.scanBook(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) GetDetail(ctx context.Context, id uuid.UUID) (*book.Detail, error) {
	const query = `
		SELECT b.id, b.title, b.author_id, b.summary, b.isbn, b.genre_ids,
		       b.created_at, b.updated_at,
		       a.family_name, a.first_name
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.id = $1
	`

	var b book.Book
	var rawGenres []string
	var familyName, firstName string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, pq.Array(&rawGenres),
		&b.CreatedAt, &b.UpdatedAt,
		&familyName, &firstName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book detail: %w", err)
	}

	if b.GenreIDs, err = stringsToIDs(rawGenres); err != nil {
		return nil, err
	}

	genreNames, err := r.genreNames(ctx, b.GenreIDs)
	if err != nil {
		return nil, err
	}

	return &book.Detail{
		Book:       b,
		AuthorName: fmt.Sprintf("%s, %s", familyName, firstName),
		GenreNames: genreNames,
	}, nil
}

// genreNames resolves names in the order of the book's genre sequence.
func (r *postgresRepository) genreNames(ctx context.Context, ids []uuid.UUID) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	const query = `SELECT id, name FROM genres WHERE id::text = ANY($1)`

	rows, err := r.pool.Query(ctx, query, pq.Array(idsToStrings(ids)))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve genre names: %w", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]string, len(ids))
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan genre name: %w", err)
		}
		byID[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read genre names: %w", err)
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	const query = `
		SELECT id, title, author_id, summary, isbn, genre_ids, created_at, updated_at
		FROM books
		WHERE author_id = $1
		ORDER BY title
	`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by author: %w", err)
	}
	defer rows.Close()

	return r.collectBooks(rows)
}

func (r *postgresRepository) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]book.Book, error) {
	const query = `
		SELECT id, title, author_id, summary, isbn, genre_ids, created_at, updated_at
		FROM books
		WHERE $1 = ANY(genre_ids)
		ORDER BY title
	`

	rows, err := r.pool.Query(ctx, query, genreID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list books by genre: %w", err)
	}
	defer rows.Close()

	return r.collectBooks(rows)
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *book.Book) (*book.Book, error) {
	const query = `
		INSERT INTO books (id, title, author_id, summary, isbn, genre_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, title, author_id, summary, isbn, genre_ids, created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Title, entity.AuthorID, entity.Summary, entity.ISBN,
		pq.Array(idsToStrings(entity.GenreIDs)),
		entity.CreatedAt, entity.UpdatedAt,
	)

	created, err := r.scanBook(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return created, nil
}

// Update is a full replace of the five authored fields, keyed strictly
// by id.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, entity *book.Book) (*book.Book, error) {
	const query = `
		UPDATE books
		SET title = $2, author_id = $3, summary = $4, isbn = $5, genre_ids = $6,
		    updated_at = $7
		WHERE id = $1
		RETURNING id, title, author_id, summary, isbn, genre_ids, created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query,
		id, entity.Title, entity.AuthorID, entity.Summary, entity.ISBN,
		pq.Array(idsToStrings(entity.GenreIDs)),
		entity.UpdatedAt,
	)

	updated, err := r.scanBook(row)
	if errors.Is(err, book.ErrBookNotFound) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	var rawGenres []string
	err := row.Scan(
		&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, pq.Array(&rawGenres),
		&b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan book: %w", err)
	}

	if b.GenreIDs, err = stringsToIDs(rawGenres); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) collectBooks(rows pgx.Rows) ([]book.Book, error) {
	var books []book.Book
	for rows.Next() {
		var b book.Book
		var rawGenres []string
		if err := rows.Scan(
			&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, pq.Array(&rawGenres),
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}

		ids, err := stringsToIDs(rawGenres)
		if err != nil {
			return nil, err
		}
		b.GenreIDs = ids
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	if books == nil {
		books = []book.Book{}
	}
	return books, nil
}

package book

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Book is a catalog record. AuthorID references exactly one author;
// GenreIDs is an ordered sequence of genre references and may be empty.
type Book struct {
	ID        uuid.UUID   `db:"id"`
	Title     string      `db:"title"`
	AuthorID  uuid.UUID   `db:"author_id"`
	Summary   string      `db:"summary"`
	ISBN      string      `db:"isbn"`
	GenreIDs  []uuid.UUID `db:"genre_ids"`
	CreatedAt time.Time   `db:"created_at"`
	UpdatedAt time.Time   `db:"updated_at"`
}

// URL is the canonical detail path for this book.
func (b *Book) URL() string {
	return fmt.Sprintf("/catalog/books/%s", b.ID)
}

// UpdateURL is the canonical edit path.
func (b *Book) UpdateURL() string {
	return fmt.Sprintf("/catalog/books/%s/edit", b.ID)
}

// DeleteURL is the canonical delete path.
func (b *Book) DeleteURL() string {
	return fmt.Sprintf("/catalog/books/%s/delete", b.ID)
}

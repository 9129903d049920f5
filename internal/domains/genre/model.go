package genre

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Genre is a category a book can belong to. Name acts as a natural key:
// creation is idempotent per name, though no storage constraint enforces
// uniqueness.
type Genre struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// URL is the canonical detail path for this genre.
func (g *Genre) URL() string {
	return fmt.Sprintf("/catalog/genres/%s", g.ID)
}

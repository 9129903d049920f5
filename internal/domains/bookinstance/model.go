package bookinstance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Instance status values.
const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusLoaned      = "Loaned"
	StatusReserved    = "Reserved"
)

// Instance is a physical copy of a book. Read-only in this service:
// copies are counted and listed, never authored.
type Instance struct {
	ID        uuid.UUID  `db:"id"`
	BookID    uuid.UUID  `db:"book_id"`
	Imprint   string     `db:"imprint"`
	Status    string     `db:"status"`
	DueBack   *time.Time `db:"due_back"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// URL is the canonical detail path for this copy.
func (i *Instance) URL() string {
	return fmt.Sprintf("/catalog/bookinstances/%s", i.ID)
}

// Available reports whether the copy can be borrowed right now.
func (i *Instance) Available() bool {
	return i.Status == StatusAvailable
}

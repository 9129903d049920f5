package author

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Author is a book author. FamilyName is the sort key for listings.
type Author struct {
	ID          uuid.UUID  `db:"id"`
	FirstName   string     `db:"first_name"`
	FamilyName  string     `db:"family_name"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	DateOfDeath *time.Time `db:"date_of_death"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// Name returns the listing form "family, first".
func (a *Author) Name() string {
	if a.FamilyName == "" && a.FirstName == "" {
		return ""
	}
	return fmt.Sprintf("%s, %s", a.FamilyName, a.FirstName)
}

// Lifespan formats the birth-death range, leaving unknown ends blank.
func (a *Author) Lifespan() string {
	return fmt.Sprintf("%s - %s", formatDate(a.DateOfBirth), formatDate(a.DateOfDeath))
}

// URL is the canonical detail path for this author.
func (a *Author) URL() string {
	return fmt.Sprintf("/catalog/authors/%s", a.ID)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

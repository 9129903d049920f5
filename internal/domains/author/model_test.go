package author

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func date(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAuthorName(t *testing.T) {
	t.Run("family name first", func(t *testing.T) {
		a := Author{FirstName: "Patrick", FamilyName: "Rothfuss"}

		assert.Equal(t, "Rothfuss, Patrick", a.Name())
	})

	t.Run("blank when both parts are missing", func(t *testing.T) {
		a := Author{}

		assert.Equal(t, "", a.Name())
	})
}

func TestAuthorLifespan(t *testing.T) {
	t.Run("both dates known", func(t *testing.T) {
		a := Author{DateOfBirth: date(1920, 8, 22), DateOfDeath: date(2012, 6, 5)}

		assert.Equal(t, "1920-08-22 - 2012-06-05", a.Lifespan())
	})

	t.Run("living author", func(t *testing.T) {
		a := Author{DateOfBirth: date(1973, 6, 6)}

		assert.Equal(t, "1973-06-06 - ", a.Lifespan())
	})

	t.Run("nothing known", func(t *testing.T) {
		a := Author{}

		assert.Equal(t, " - ", a.Lifespan())
	})
}

func TestAuthorURL(t *testing.T) {
	id := uuid.New()
	a := Author{ID: id}

	assert.Equal(t, "/catalog/authors/"+id.String(), a.URL())
}

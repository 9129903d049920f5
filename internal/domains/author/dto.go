package author

import (
	"time"

	"github.com/google/uuid"
)

// AuthorResponse - basic author information
type AuthorResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	Lifespan    string     `json:"lifespan"`
	URL         string     `json:"url"`
}

// BookSummary is the slice of a book shown on an author detail page.
type BookSummary struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Summary string    `json:"summary"`
	URL     string    `json:"url"`
}

// DetailResponse - author plus every book they wrote
type DetailResponse struct {
	Author AuthorResponse `json:"author"`
	Books  []BookSummary  `json:"books"`
}

// ToResponse converts an Author entity to its DTO.
func (a *Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:          a.ID,
		Name:        a.Name(),
		DateOfBirth: a.DateOfBirth,
		DateOfDeath: a.DateOfDeath,
		Lifespan:    a.Lifespan(),
		URL:         a.URL(),
	}
}

// ToResponses converts an author list, preserving order.
func ToResponses(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, len(authors))
	for i := range authors {
		out[i] = authors[i].ToResponse()
	}
	return out
}

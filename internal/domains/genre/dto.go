package genre

import (
	"time"

	"github.com/google/uuid"

	"locallibrary-backend/internal/shared/forms"
)

// GenreResponse - basic genre information
type GenreResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

// Option decorates a genre with the selection marker used when a book
// form is re-rendered: Checked is true iff the genre is part of the
// candidate book's genre sequence.
type Option struct {
	GenreResponse
	Checked bool `json:"checked"`
}

// BookSummary is the slice of a book shown on a genre detail page.
type BookSummary struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Summary string    `json:"summary"`
	URL     string    `json:"url"`
}

// DetailResponse - genre plus every book filed under it
type DetailResponse struct {
	Genre GenreResponse `json:"genre"`
	Books []BookSummary `json:"books"`
}

// FormView is the view model for the genre form: the candidate exactly
// as the user submitted it (sanitized) plus ordered validation errors.
type FormView struct {
	Name   string   `json:"name"`
	Errors []string `json:"errors,omitempty"`
}

// SubmitResult is the outcome of a genre submission: either a redirect
// to the canonical URL of the record (new or pre-existing), or the form
// view to re-render.
type SubmitResult struct {
	Redirect string
	Form     *FormView
}

// ToResponse converts a Genre entity to its DTO.
func (g *Genre) ToResponse() GenreResponse {
	return GenreResponse{
		ID:   g.ID,
		Name: g.Name,
		URL:  g.URL(),
	}
}

// ToResponses converts a genre list, preserving order.
func ToResponses(genres []Genre) []GenreResponse {
	out := make([]GenreResponse, len(genres))
	for i := range genres {
		out[i] = genres[i].ToResponse()
	}
	return out
}

// MarkSelected decorates the full genre list with selection markers.
// Identifiers compare by value, so two UUIDs naming the same record
// always match. Purely a view-state transform.
func MarkSelected(all []Genre, selected []uuid.UUID) []Option {
	chosen := make(map[uuid.UUID]bool, len(selected))
	for _, id := range selected {
		chosen[id] = true
	}

	options := make([]Option, len(all))
	for i := range all {
		options[i] = Option{
			GenreResponse: all[i].ToResponse(),
			Checked:       chosen[all[i].ID],
		}
	}
	return options
}

// ParseForm builds a candidate genre from a raw submission. The name is
// sanitized whether or not validation passes; messages come back in
// field declaration order.
func ParseForm(v forms.Values) (*Genre, []string) {
	messages := forms.Validate(v,
		forms.RequiredText("name", "Name"),
	)

	candidate := &Genre{
		Name: forms.Sanitize(v.Text("name")),
	}
	return candidate, messages
}

// NewGenre builds a persistable genre from a sanitized candidate.
func NewGenre(name string) *Genre {
	now := time.Now().UTC()
	return &Genre{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

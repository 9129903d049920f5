package book

import (
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/internal/shared/forms"
)

// BookResponse - basic book information
type BookResponse struct {
	ID       uuid.UUID   `json:"id"`
	Title    string      `json:"title"`
	AuthorID uuid.UUID   `json:"author_id"`
	Summary  string      `json:"summary"`
	ISBN     string      `json:"isbn"`
	GenreIDs []uuid.UUID `json:"genre_ids"`
	URL      string      `json:"url"`
}

// ListItem - one row of the book list (title plus author name)
type ListItem struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	AuthorName string    `json:"author_name"`
	URL        string    `json:"url"`
}

// Detail - a book with its references resolved for display
type Detail struct {
	Book       Book
	AuthorName string
	GenreNames []string
}

// InstanceSummary is the slice of a copy shown on a book detail page.
type InstanceSummary struct {
	ID      uuid.UUID `json:"id"`
	Imprint string    `json:"imprint"`
	Status  string    `json:"status"`
	DueBack string    `json:"due_back,omitempty"`
	URL     string    `json:"url"`
}

// DetailResponse - book detail plus its copies
type DetailResponse struct {
	Book       BookResponse      `json:"book"`
	AuthorName string            `json:"author_name"`
	GenreNames []string          `json:"genre_names"`
	Instances  []InstanceSummary `json:"instances"`
}

// Candidate is an in-memory, not-yet-persisted book built from a
// sanitized submission. It is what a re-rendered form shows, so its
// fields carry the user's input as submitted (post-sanitization).
type Candidate struct {
	ID       uuid.UUID   `json:"id,omitempty"`
	Title    string      `json:"title"`
	AuthorID uuid.UUID   `json:"author_id,omitempty"`
	Summary  string      `json:"summary"`
	ISBN     string      `json:"isbn"`
	GenreIDs []uuid.UUID `json:"genre_ids"`
}

// FormView is the view model for the book form: the candidate, fresh
// reference lists (genres carrying selection markers), and ordered
// validation errors. One shape serves first render and re-render.
type FormView struct {
	Book    *Candidate              `json:"book,omitempty"`
	Authors []author.AuthorResponse `json:"authors"`
	Genres  []genre.Option          `json:"genres"`
	Errors  []string                `json:"errors,omitempty"`
}

// SubmitResult is the outcome of a book submission: either a redirect
// to the record's canonical URL or the form view to re-render.
type SubmitResult struct {
	Redirect string
	Form     *FormView
}

// ToResponse converts a Book entity to its DTO.
func (b *Book) ToResponse() BookResponse {
	genreIDs := b.GenreIDs
	if genreIDs == nil {
		genreIDs = []uuid.UUID{}
	}
	return BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		AuthorID: b.AuthorID,
		Summary:  b.Summary,
		ISBN:     b.ISBN,
		GenreIDs: genreIDs,
		URL:      b.URL(),
	}
}

// ParseForm builds a candidate book from a raw submission. The genre
// field is normalized to a sequence before anything else, every text
// field is sanitized whether or not validation passes, and messages
// come back in field declaration order: Title, Author, Summary, ISBN.
func ParseForm(v forms.Values) (*Candidate, []string) {
	genreValues := forms.SanitizeAll(v.Multi("genre"))

	messages := forms.Validate(v,
		forms.RequiredText("title", "Title"),
		forms.RequiredText("author", "Author"),
		forms.RequiredText("summary", "Summary"),
		forms.RequiredText("isbn", "ISBN"),
	)

	candidate := &Candidate{
		Title:    forms.Sanitize(v.Text("title")),
		Summary:  forms.Sanitize(v.Text("summary")),
		ISBN:     forms.Sanitize(v.Text("isbn")),
		GenreIDs: parseIDs(genreValues),
	}

	if id, err := uuid.Parse(forms.Sanitize(v.Text("author"))); err == nil {
		candidate.AuthorID = id
	}

	return candidate, messages
}

// parseIDs keeps the submitted order, dropping values that are not
// identifiers.
func parseIDs(values []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for _, raw := range values {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

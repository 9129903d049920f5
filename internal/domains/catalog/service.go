package catalog

import "context"

// Summary is the landing-page aggregate: record counts across the
// whole catalog.
type Summary struct {
	BookCount              int64 `json:"book_count"`
	BookInstanceCount      int64 `json:"book_instance_count"`
	AvailableInstanceCount int64 `json:"book_instance_available_count"`
	AuthorCount            int64 `json:"author_count"`
	GenreCount             int64 `json:"genre_count"`
}

// Service produces the landing summary.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

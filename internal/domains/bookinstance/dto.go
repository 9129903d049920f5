package bookinstance

import (
	"time"

	"github.com/google/uuid"
)

// InstanceResponse - one copy with its book title resolved
type InstanceResponse struct {
	ID        uuid.UUID  `json:"id"`
	BookID    uuid.UUID  `json:"book_id"`
	BookTitle string     `json:"book_title"`
	Imprint   string     `json:"imprint"`
	Status    string     `json:"status"`
	DueBack   *time.Time `json:"due_back,omitempty"`
	URL       string     `json:"url"`
}

// ListItem pairs an instance with its book title for listings.
type ListItem struct {
	Instance  Instance
	BookTitle string
}

// ToResponse converts a ListItem to its DTO.
func (li *ListItem) ToResponse() InstanceResponse {
	return InstanceResponse{
		ID:        li.Instance.ID,
		BookID:    li.Instance.BookID,
		BookTitle: li.BookTitle,
		Imprint:   li.Instance.Imprint,
		Status:    li.Instance.Status,
		DueBack:   li.Instance.DueBack,
		URL:       li.Instance.URL(),
	}
}

package bookinstance

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business contract for book copies.
type Service interface {
	List(ctx context.Context) ([]InstanceResponse, error)
	Detail(ctx context.Context, id uuid.UUID) (*InstanceResponse, error)
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/bookinstance"
)

type instanceService struct {
	instances bookinstance.Repository
}

func NewInstanceService(instances bookinstance.Repository) bookinstance.Service {
	return &instanceService{instances: instances}
}

func (s *instanceService) List(ctx context.Context) ([]bookinstance.InstanceResponse, error) {
	items, err := s.instances.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list book instances: %w", err)
	}

	out := make([]bookinstance.InstanceResponse, len(items))
	for i := range items {
		out[i] = items[i].ToResponse()
	}
	return out, nil
}

func (s *instanceService) Detail(ctx context.Context, id uuid.UUID) (*bookinstance.InstanceResponse, error) {
	item, err := s.instances.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := item.ToResponse()
	return &resp, nil
}

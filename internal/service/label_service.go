package service

import (
	"context"

	"flowboard/internal/model"
	"flowboard/internal/repository"
)

// LabelService provides helpers around labels.
type LabelService struct {
	repo *repository.LabelRepository
}

func NewLabelService(store *repository.Store) *LabelService {
	return &LabelService{repo: store.Labels}
}

func (s *LabelService) List(ctx context.Context) ([]model.Label, error) {
	labels, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []model.Label{}
	}
	return labels, nil
}

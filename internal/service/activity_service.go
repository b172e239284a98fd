package service

import (
	"context"

	"flowboard/internal/model"
	"flowboard/internal/pagination"
	"flowboard/internal/repository"
)

// ActivityService reads the activity feed. Entries are only written as a side
// effect of other mutations.
type ActivityService struct {
	store *repository.Store
}

func NewActivityService(store *repository.Store) *ActivityService {
	return &ActivityService{store: store}
}

func (s *ActivityService) List(ctx context.Context, filter repository.ActivityFilter, p pagination.Params) (pagination.Page[model.Activity], error) {
	return listPage(ctx, p,
		func(ctx context.Context, offset, limit int) ([]model.Activity, error) {
			return s.store.Activities.List(ctx, filter, offset, limit)
		},
		func(ctx context.Context) (int64, error) {
			return s.store.Activities.Count(ctx, filter)
		},
	)
}

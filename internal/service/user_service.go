package service

import (
	"context"

	"flowboard/internal/model"
	"flowboard/internal/repository"
	"flowboard/internal/validation"
)

// UserService provides the team directory.
type UserService struct {
	store *repository.Store
}

func NewUserService(store *repository.Store) *UserService {
	return &UserService{store: store}
}

// Search returns at most limit users whose name or email contains search.
func (s *UserService) Search(ctx context.Context, search string, limit int) ([]model.User, error) {
	users, err := s.store.Users.Search(ctx, search, limit)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.store.Users.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id string, input validation.UpdateUser) (*model.User, error) {
	if _, err := s.store.Users.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.store.Users.Update(ctx, id, input.Changes()); err != nil {
		return nil, err
	}
	return s.store.Users.FindByID(ctx, id)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"flowboard/internal/model"
)

// UserRepository handles CRUD for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreateByEmail returns the user with the given email, creating it from
// user when absent. Existing rows are left untouched.
func (r *UserRepository) GetOrCreateByEmail(ctx context.Context, user *model.User) (*model.User, error) {
	var existing model.User
	db := r.db.WithContext(ctx)
	err := db.Where("email = ?", user.Email).First(&existing).Error
	switch {
	case err == nil:
		return &existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// Search matches name or email case-insensitively, ordered by name.
func (r *UserRepository) Search(ctx context.Context, search string, limit int) ([]model.User, error) {
	query := r.db.WithContext(ctx).
		Select("id", "name", "email", "avatar_url", "role").
		Order("name ASC").
		Limit(limit)
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var users []model.User
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(&model.User{ID: id}).Updates(changes).Error; err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

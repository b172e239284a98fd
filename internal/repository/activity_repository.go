package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"flowboard/internal/model"
)

// ActivityRepository appends to and reads the activity log. It has no update
// or delete methods.
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	if err := r.db.WithContext(ctx).Omit("Project", "Task", "User").Create(activity).Error; err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

// Record builds and appends an activity from its typed details.
func (r *ActivityRepository) Record(ctx context.Context, userID string, projectID, taskID *string, details model.ActivityDetails) (*model.Activity, error) {
	activity, err := model.NewActivity(userID, projectID, taskID, details)
	if err != nil {
		return nil, err
	}
	if err := r.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// List returns one page of the feed, newest first, with user, project and task summaries.
func (r *ActivityRepository) List(ctx context.Context, filter ActivityFilter, offset, limit int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.WithContext(ctx).
		Scopes(filter.scope).
		Preload("User", userSummary).
		Preload("Project", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") }).
		Preload("Task", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title") }).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return activities, nil
}

func (r *ActivityRepository) Count(ctx context.Context, filter ActivityFilter) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Activity{}).Scopes(filter.scope).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count activity: %w", err)
	}
	return total, nil
}

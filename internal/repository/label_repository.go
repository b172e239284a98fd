package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"flowboard/internal/model"
)

// LabelRepository manages task labels.
type LabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

// GetOrCreate inserts label unless a row with its id already exists.
func (r *LabelRepository) GetOrCreate(ctx context.Context, label *model.Label) error {
	if err := r.db.WithContext(ctx).Where("id = ?", label.ID).FirstOrCreate(label).Error; err != nil {
		return fmt.Errorf("get or create label: %w", err)
	}
	return nil
}

func (r *LabelRepository) List(ctx context.Context) ([]model.Label, error) {
	var labels []model.Label
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&labels).Error; err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	return labels, nil
}

// Attach links labels to a task; existing links are kept.
func (r *LabelRepository) Attach(ctx context.Context, taskID string, labels ...model.Label) error {
	if len(labels) == 0 {
		return nil
	}
	task := model.Task{ID: taskID}
	if err := r.db.WithContext(ctx).Model(&task).Association("Labels").Append(labels); err != nil {
		return fmt.Errorf("attach labels: %w", err)
	}
	return nil
}

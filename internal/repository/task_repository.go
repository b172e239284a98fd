package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"

	"flowboard/internal/model"
)

// statusOrder sorts statuses by board position rather than alphabetically.
const statusOrder = "CASE status WHEN 'todo' THEN 0 WHEN 'in_progress' THEN 1 WHEN 'review' THEN 2 WHEN 'done' THEN 3 ELSE 4 END"

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Omit("Project", "Assignee", "Creator", "Labels", "Comments").Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// GetOrCreate inserts task unless a row with its id already exists.
func (r *TaskRepository) GetOrCreate(ctx context.Context, task *model.Task) error {
	err := r.db.WithContext(ctx).Omit("Project", "Assignee", "Creator", "Labels", "Comments").
		Where("id = ?", task.ID).FirstOrCreate(task).Error
	if err != nil {
		return fmt.Errorf("get or create task: %w", err)
	}
	return nil
}

// NextPosition returns one past the highest position in the project's status column.
func (r *TaskRepository) NextPosition(ctx context.Context, projectID string, status model.TaskStatus) (int, error) {
	var max sql.NullInt64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("MAX(position)").
		Where("project_id = ? AND status = ?", projectID, status).
		Row().Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("next task position: %w", err)
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64) + 1, nil
}

// List returns one page of tasks in board order with people, labels and comment counts.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter, offset, limit int) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Scopes(filter.scope).
		Preload("Assignee", userSummary).
		Preload("Creator", userSummary).
		Preload("Labels").
		Order(statusOrder).
		Order("position ASC").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	ids := make([]string, len(tasks))
	for i := range tasks {
		ids[i] = tasks[i].ID
	}
	comments, err := countBy(r.db.WithContext(ctx), &model.Comment{}, "task_id", ids)
	if err != nil {
		return nil, fmt.Errorf("count task comments: %w", err)
	}
	for i := range tasks {
		tasks[i].Count = &model.TaskCount{Comments: comments[tasks[i].ID]}
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, filter TaskFilter) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Scopes(filter.scope).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return total, nil
}

// ListByProject returns every task of a project in board order with people attached.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Assignee", userSummary).
		Preload("Labels").
		Where("project_id = ?", projectID).
		Order(statusOrder).
		Order("position ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list project tasks: %w", err)
	}
	return tasks, nil
}

// FindByID returns a task with project, people, labels and comments.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Project", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") }).
		Preload("Assignee", userContact).
		Preload("Creator", userContact).
		Preload("Labels").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Comments.Author", userSummary).
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

// FindSummary returns a task with assignee and creator summaries only.
func (r *TaskRepository) FindSummary(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Assignee", userSummary).
		Preload("Creator", userSummary).
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

// FindBrief loads only the columns mutations need to diff and denormalize.
func (r *TaskRepository) FindBrief(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Select("id", "project_id", "title", "status", "assignee_id").
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(&model.Task{ID: id}).Updates(changes).Error; err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete removes a task; comments and label links go with it.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Task{})
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete task: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

// ListOverdue returns unfinished tasks whose due date is before now.
func (r *TaskRepository) ListOverdue(ctx context.Context, now time.Time) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Project", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") }).
		Preload("Assignee", userSummary).
		Where("due_date IS NOT NULL AND due_date < ? AND status <> ?", now, model.StatusDone).
		Order("due_date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list overdue tasks: %w", err)
	}
	return tasks, nil
}

// CountByStatus returns the number of tasks per status.
func (r *TaskRepository) CountByStatus(ctx context.Context) (map[model.TaskStatus]int64, error) {
	var rows []countRow
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("status AS ref, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count tasks by status: %w", err)
	}
	counts := make(map[model.TaskStatus]int64, len(rows))
	for _, row := range rows {
		counts[model.TaskStatus(row.Ref)] = row.Total
	}
	return counts, nil
}

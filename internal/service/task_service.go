package service

import (
	"context"

	"flowboard/internal/auth"
	"flowboard/internal/model"
	"flowboard/internal/pagination"
	"flowboard/internal/repository"
	"flowboard/internal/validation"
)

// TaskService wraps task-related business logic.
type TaskService struct {
	store *repository.Store
}

func NewTaskService(store *repository.Store) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) List(ctx context.Context, filter repository.TaskFilter, p pagination.Params) (pagination.Page[model.Task], error) {
	return listPage(ctx, p,
		func(ctx context.Context, offset, limit int) ([]model.Task, error) {
			return s.store.Tasks.List(ctx, filter, offset, limit)
		},
		func(ctx context.Context) (int64, error) {
			return s.store.Tasks.Count(ctx, filter)
		},
	)
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	return s.store.Tasks.FindByID(ctx, id)
}

// Create stores a task created by the caller at the end of its status column.
// It always logs task_created, and task_assigned for the assignee when one is given.
func (s *TaskService) Create(ctx context.Context, caller auth.Identity, input validation.CreateTask) (*model.Task, error) {
	task := model.Task{
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.Due(),
		AssigneeID:  input.AssigneeID.Ptr(),
		CreatorID:   caller.UserID,
	}
	if task.Status == "" {
		task.Status = model.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Projects.FindSummary(ctx, task.ProjectID); err != nil {
			return err
		}
		position, err := tx.Tasks.NextPosition(ctx, task.ProjectID, task.Status)
		if err != nil {
			return err
		}
		task.Position = position
		if err := tx.Tasks.Create(ctx, &task); err != nil {
			return err
		}

		if _, err := tx.Activities.Record(ctx, caller.UserID, &task.ProjectID, &task.ID,
			model.TaskCreated{TaskTitle: task.Title}); err != nil {
			return err
		}
		if task.AssigneeID != nil {
			if _, err := tx.Activities.Record(ctx, *task.AssigneeID, &task.ProjectID, &task.ID,
				model.TaskAssigned{TaskTitle: task.Title, AssignedBy: caller.UserID}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.store.Tasks.FindSummary(ctx, task.ID)
}

// Update applies a partial update. A changed assignee logs task_assigned,
// attributed to the new assignee or to the caller when unassigning; moving
// the task to done logs task_completed.
func (s *TaskService) Update(ctx context.Context, caller auth.Identity, id string, input validation.UpdateTask) (*model.Task, error) {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		existing, err := tx.Tasks.FindBrief(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Tasks.Update(ctx, id, input.Changes()); err != nil {
			return err
		}

		title := existing.Title
		if input.Title != nil {
			title = *input.Title
		}

		if input.AssigneeID.Set && !sameID(existing.AssigneeID, input.AssigneeID.Ptr()) {
			userID := caller.UserID
			if input.AssigneeID.Valid {
				userID = input.AssigneeID.Value
			}
			if _, err := tx.Activities.Record(ctx, userID, &existing.ProjectID, &existing.ID,
				model.TaskAssigned{TaskTitle: title, AssignedBy: caller.UserID}); err != nil {
				return err
			}
		}

		if input.CompletesTask() {
			if _, err := tx.Activities.Record(ctx, caller.UserID, &existing.ProjectID, &existing.ID,
				model.TaskCompleted{TaskTitle: title}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.store.Tasks.FindSummary(ctx, id)
}

// Delete removes a task completely along with its comments and label links.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.store.Tasks.Delete(ctx, id)
}

func sameID(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

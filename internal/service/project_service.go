package service

import (
	"context"
	"fmt"

	"flowboard/internal/auth"
	"flowboard/internal/display"
	"flowboard/internal/model"
	"flowboard/internal/pagination"
	"flowboard/internal/repository"
	"flowboard/internal/validation"
)

// ProjectService wraps project and membership business logic.
type ProjectService struct {
	store *repository.Store
}

func NewProjectService(store *repository.Store) *ProjectService {
	return &ProjectService{store: store}
}

func (s *ProjectService) List(ctx context.Context, filter repository.ProjectFilter, p pagination.Params) (pagination.Page[model.Project], error) {
	return listPage(ctx, p,
		func(ctx context.Context, offset, limit int) ([]model.Project, error) {
			return s.store.Projects.List(ctx, filter, offset, limit)
		},
		func(ctx context.Context) (int64, error) {
			return s.store.Projects.Count(ctx, filter)
		},
	)
}

// Create stores a project owned by the caller and logs project_created.
func (s *ProjectService) Create(ctx context.Context, caller auth.Identity, input validation.CreateProject) (*model.Project, error) {
	project := model.Project{
		Name:        input.Name,
		Description: input.Description,
		Status:      model.ProjectActive,
		DueDate:     input.Due(),
		OwnerID:     caller.UserID,
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Projects.Create(ctx, &project); err != nil {
			return err
		}
		_, err := tx.Activities.Record(ctx, caller.UserID, &project.ID, nil, model.ProjectCreated{ProjectName: project.Name})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.store.Projects.FindSummary(ctx, project.ID)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*model.Project, error) {
	return s.store.Projects.FindByID(ctx, id)
}

// Update applies a partial update and logs project_updated.
func (s *ProjectService) Update(ctx context.Context, caller auth.Identity, id string, input validation.UpdateProject) (*model.Project, error) {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Projects.FindSummary(ctx, id); err != nil {
			return err
		}
		if err := tx.Projects.Update(ctx, id, input.Changes()); err != nil {
			return err
		}
		updated, err := tx.Projects.FindSummary(ctx, id)
		if err != nil {
			return err
		}
		_, err = tx.Activities.Record(ctx, caller.UserID, &updated.ID, nil, model.ProjectUpdated{ProjectName: updated.Name})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.store.Projects.FindSummary(ctx, id)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.store.Projects.Delete(ctx, id)
}

// Board is a project with its tasks partitioned by status.
type Board struct {
	Project *model.Project   `json:"project"`
	Columns []display.Column `json:"columns"`
}

func (s *ProjectService) Board(ctx context.Context, id string) (*Board, error) {
	project, err := s.store.Projects.FindSummary(ctx, id)
	if err != nil {
		return nil, err
	}
	tasks, err := s.store.Tasks.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Board{Project: project, Columns: display.Board(tasks)}, nil
}

// AddMember joins a user to a project and logs member_added.
func (s *ProjectService) AddMember(ctx context.Context, caller auth.Identity, projectID string, input validation.AddMember) (*model.ProjectMember, error) {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		project, err := tx.Projects.FindSummary(ctx, projectID)
		if err != nil {
			return err
		}
		if _, err := tx.Users.FindByID(ctx, input.UserID); err != nil {
			return err
		}
		member := model.ProjectMember{ProjectID: projectID, UserID: input.UserID, Role: input.Role}
		if err := tx.Projects.AddMember(ctx, &member); err != nil {
			return err
		}
		_, err = tx.Activities.Record(ctx, caller.UserID, &project.ID, nil,
			model.MemberAdded{ProjectName: project.Name, MemberID: input.UserID})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.store.Projects.FindMember(ctx, projectID, input.UserID)
}

// RemoveMember drops a membership and logs member_removed.
func (s *ProjectService) RemoveMember(ctx context.Context, caller auth.Identity, projectID, userID string) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		project, err := tx.Projects.FindSummary(ctx, projectID)
		if err != nil {
			return err
		}
		if err := tx.Projects.RemoveMember(ctx, projectID, userID); err != nil {
			return err
		}
		_, err = tx.Activities.Record(ctx, caller.UserID, &project.ID, nil,
			model.MemberRemoved{ProjectName: project.Name, MemberID: userID})
		return err
	})
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	return nil
}

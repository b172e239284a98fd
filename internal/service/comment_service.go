package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"flowboard/internal/auth"
	"flowboard/internal/model"
	"flowboard/internal/repository"
	"flowboard/internal/validation"
)

// CommentService wraps comment threads on tasks.
type CommentService struct {
	store *repository.Store
}

func NewCommentService(store *repository.Store) *CommentService {
	return &CommentService{store: store}
}

// ListThreaded returns the task's top-level comments, oldest first, each
// carrying its direct replies.
func (s *CommentService) ListThreaded(ctx context.Context, taskID string) ([]model.Comment, error) {
	comments, err := s.store.Comments.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return threadComments(comments), nil
}

// threadComments groups an ordered comment list into one level of nesting.
// Replies to replies are not surfaced.
func threadComments(comments []model.Comment) []model.Comment {
	top := make([]model.Comment, 0, len(comments))
	index := make(map[string]int)
	for _, c := range comments {
		if c.ParentID == nil {
			c.Replies = []model.Comment{}
			index[c.ID] = len(top)
			top = append(top, c)
		}
	}
	for _, c := range comments {
		if c.ParentID == nil {
			continue
		}
		if i, ok := index[*c.ParentID]; ok {
			c.Replies = []model.Comment{}
			top[i].Replies = append(top[i].Replies, c)
		}
	}
	return top
}

// Create adds a comment by the caller and logs comment_added. A reply must
// point at a top-level comment on the same task.
func (s *CommentService) Create(ctx context.Context, caller auth.Identity, input validation.CreateComment) (*model.Comment, error) {
	comment := model.Comment{
		TaskID:   input.TaskID,
		AuthorID: caller.UserID,
		Content:  input.Content,
		ParentID: input.ParentID.Ptr(),
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		task, err := tx.Tasks.FindBrief(ctx, input.TaskID)
		if err != nil {
			return err
		}
		if comment.ParentID != nil {
			if err := checkParent(ctx, tx, *comment.ParentID, task.ID); err != nil {
				return err
			}
		}
		if err := tx.Comments.Create(ctx, &comment); err != nil {
			return err
		}
		_, err = tx.Activities.Record(ctx, caller.UserID, &task.ProjectID, &task.ID,
			model.CommentAdded{TaskTitle: task.Title})
		return err
	})
	if err != nil {
		return nil, err
	}

	created, err := s.store.Comments.FindByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	created.Replies = []model.Comment{}
	return created, nil
}

func checkParent(ctx context.Context, tx *repository.Store, parentID, taskID string) error {
	parent, err := tx.Comments.FindByID(ctx, parentID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return validation.Errors{"parentId": "The parent comment does not exist."}
	case err != nil:
		return err
	case parent.TaskID != taskID:
		return validation.Errors{"parentId": "The parent comment belongs to another task."}
	case parent.ParentID != nil:
		return validation.Errors{"parentId": "Replies cannot be nested more than one level."}
	}
	return nil
}

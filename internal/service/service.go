package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"flowboard/internal/pagination"
	"flowboard/internal/repository"
)

// Services groups every orchestrator the transport layer calls.
type Services struct {
	Projects *ProjectService
	Tasks    *TaskService
	Comments *CommentService
	Activity *ActivityService
	Users    *UserService
	Labels   *LabelService
	Digest   *DigestService
	Seed     *SeedService
}

func New(store *repository.Store, log *logrus.Logger) *Services {
	return &Services{
		Projects: NewProjectService(store),
		Tasks:    NewTaskService(store),
		Comments: NewCommentService(store),
		Activity: NewActivityService(store),
		Users:    NewUserService(store),
		Labels:   NewLabelService(store),
		Digest:   NewDigestService(store, log),
		Seed:     NewSeedService(store, log),
	}
}

// listPage runs the page fetch and the total count concurrently. The two
// reads are not isolated from each other.
func listPage[T any](
	ctx context.Context,
	p pagination.Params,
	fetch func(ctx context.Context, offset, limit int) ([]T, error),
	count func(ctx context.Context) (int64, error),
) (pagination.Page[T], error) {
	var (
		items []T
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = fetch(gctx, p.Skip(), p.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return pagination.Page[T]{}, err
	}
	return pagination.New(items, total, p), nil
}

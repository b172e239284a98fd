package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"flowboard/internal/display"
	"flowboard/internal/model"
	"flowboard/internal/repository"
)

// DigestService builds the periodic summary of open and overdue work.
type DigestService struct {
	tasks *repository.TaskRepository
	log   *logrus.Logger
}

func NewDigestService(store *repository.Store, log *logrus.Logger) *DigestService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DigestService{tasks: store.Tasks, log: log}
}

func (s *DigestService) Summary(ctx context.Context, now time.Time) (string, error) {
	counts, err := s.tasks.CountByStatus(ctx)
	if err != nil {
		return "", err
	}
	overdue, err := s.tasks.ListOverdue(ctx, now)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString("FlowBoard digest\n")
	builder.WriteString(display.Date(now) + "\n\n")

	builder.WriteString("Open work\n")
	for _, status := range model.TaskStatuses {
		if status == model.StatusDone {
			continue
		}
		builder.WriteString(fmt.Sprintf("- %s: %d\n", status, counts[status]))
	}
	builder.WriteString(fmt.Sprintf("Done: %d\n", counts[model.StatusDone]))

	builder.WriteString("\nOverdue\n")
	if len(overdue) == 0 {
		builder.WriteString("- nothing overdue\n")
	} else {
		for _, task := range overdue {
			builder.WriteString(formatOverdue(task, now))
		}
	}

	return strings.TrimSpace(builder.String()), nil
}

// Run builds the summary for the current time and logs it.
func (s *DigestService) Run(ctx context.Context) {
	summary, err := s.Summary(ctx, time.Now().UTC())
	if err != nil {
		s.log.WithError(err).Error("build digest")
		return
	}
	s.log.WithField("job", "digest").Info(summary)
}

func formatOverdue(task model.Task, now time.Time) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("! %s", display.Truncate(strings.TrimSpace(task.Title), 80)))
	if task.Project != nil && task.Project.Name != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", task.Project.Name))
	}
	if task.DueDate != nil {
		sb.WriteString(fmt.Sprintf("\n   due %s", display.RelativeDate(*task.DueDate, now)))
	}
	if task.Assignee != nil {
		sb.WriteString(fmt.Sprintf(" · %s", task.Assignee.Name))
	} else {
		sb.WriteString(" · unassigned")
	}
	sb.WriteByte('\n')
	return sb.String()
}

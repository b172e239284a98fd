package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"flowboard/internal/auth"
	"flowboard/internal/model"
	"flowboard/internal/pagination"
	"flowboard/internal/repository"
	"flowboard/internal/validation"
)

var (
	alice = auth.Identity{UserID: "user-alice"}
	bob   = auth.Identity{UserID: "user-bob"}
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newEmptyServices(t *testing.T) (*Services, *repository.Store) {
	t.Helper()
	db, err := repository.NewDB(":memory:", quietLogger())
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	store := repository.NewStore(db)
	return New(store, quietLogger()), store
}

func newTestServices(t *testing.T) (*Services, *repository.Store) {
	t.Helper()
	svc, store := newEmptyServices(t)
	ctx := context.Background()
	for _, u := range []model.User{
		{ID: "user-alice", Email: "alice@example.com", Name: "Alice Chen", Role: model.RoleAdmin},
		{ID: "user-bob", Email: "bob@example.com", Name: "Bob Martinez", Role: model.RoleMember},
		{ID: "user-carol", Email: "carol@example.com", Name: "Carol Williams", Role: model.RoleMember},
	} {
		u := u
		if _, err := store.Users.GetOrCreateByEmail(ctx, &u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}
	return svc, store
}

func mustCreateProject(t *testing.T, svc *Services, name string) *model.Project {
	t.Helper()
	in, err := validation.ParseCreateProject([]byte(`{"name":"` + name + `"}`))
	if err != nil {
		t.Fatalf("parse project: %v", err)
	}
	project, err := svc.Projects.Create(context.Background(), alice, in)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return project
}

func mustCreateTask(t *testing.T, svc *Services, body string) *model.Task {
	t.Helper()
	in, err := validation.ParseCreateTask([]byte(body))
	if err != nil {
		t.Fatalf("parse task: %v", err)
	}
	task, err := svc.Tasks.Create(context.Background(), alice, in)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func taskActivity(t *testing.T, store *repository.Store, taskID string) []model.Activity {
	t.Helper()
	feed, err := store.Activities.List(context.Background(), repository.ActivityFilter{TaskID: taskID}, 0, 100)
	if err != nil {
		t.Fatalf("list activity: %v", err)
	}
	return feed
}

func countType(feed []model.Activity, typ model.ActivityType) int {
	n := 0
	for _, a := range feed {
		if a.Type == typ {
			n++
		}
	}
	return n
}

func TestCreateProjectLogsActivity(t *testing.T) {
	svc, store := newTestServices(t)
	project := mustCreateProject(t, svc, "Website")

	if project.OwnerID != alice.UserID || project.Owner == nil || project.Owner.Name != "Alice Chen" {
		t.Errorf("project owner = %+v", project.Owner)
	}
	feed, err := store.Activities.List(context.Background(), repository.ActivityFilter{ProjectID: project.ID}, 0, 20)
	if err != nil {
		t.Fatalf("list activity: %v", err)
	}
	if len(feed) != 1 || feed[0].Type != model.ActivityProjectCreated || feed[0].TaskID != nil {
		t.Fatalf("feed = %+v", feed)
	}
	details, err := feed[0].Details()
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if details.(model.ProjectCreated).ProjectName != "Website" {
		t.Errorf("details = %+v", details)
	}
}

func TestCreateTaskWithoutAssigneeLogsOnce(t *testing.T) {
	svc, store := newTestServices(t)
	project := mustCreateProject(t, svc, "Website")
	task := mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"Write docs"}`)

	if task.Status != model.StatusTodo || task.Priority != model.PriorityMedium {
		t.Errorf("defaults = %s/%s", task.Status, task.Priority)
	}
	if task.CreatorID != alice.UserID {
		t.Errorf("creator = %q", task.CreatorID)
	}
	feed := taskActivity(t, store, task.ID)
	if len(feed) != 1 || feed[0].Type != model.ActivityTaskCreated {
		t.Errorf("feed = %+v", feed)
	}
}

func TestCreateTaskWithAssigneeLogsTwice(t *testing.T) {
	svc, store := newTestServices(t)
	project := mustCreateProject(t, svc, "Website")
	task := mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"Write docs","assigneeId":"user-bob"}`)

	feed := taskActivity(t, store, task.ID)
	if len(feed) != 2 {
		t.Fatalf("got %d activities, want 2", len(feed))
	}
	if countType(feed, model.ActivityTaskCreated) != 1 || countType(feed, model.ActivityTaskAssigned) != 1 {
		t.Fatalf("types = %s, %s", feed[0].Type, feed[1].Type)
	}
	for _, a := range feed {
		if a.Type != model.ActivityTaskAssigned {
			continue
		}
		if a.UserID != "user-bob" {
			t.Errorf("assigned activity user = %q, want user-bob", a.UserID)
		}
		details, _ := a.Details()
		if got := details.(model.TaskAssigned); got.AssignedBy != alice.UserID || got.TaskTitle != "Write docs" {
			t.Errorf("details = %+v", got)
		}
	}
	if task.Assignee == nil || task.Assignee.Name != "Bob Martinez" {
		t.Errorf("assignee = %+v", task.Assignee)
	}
}

func TestCreateTaskPositions(t *testing.T) {
	svc, _ := newTestServices(t)
	project := mustCreateProject(t, svc, "Website")
	first := mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"A"}`)
	second := mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"B"}`)
	other := mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"C","status":"done"}`)

	if first.Position != 0 || second.Position != 1 || other.Position != 0 {
		t.Errorf("positions = %d, %d, %d", first.Position, second.Position, other.Position)
	}
}

func TestCreateTaskMissingProjectRollsBack(t *testing.T) {
	svc, store := newTestServices(t)
	in, err := validation.ParseCreateTask([]byte(`{"projectId":"nope","title":"Orphan"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := svc.Tasks.Create(context.Background(), alice, in); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
	total, err := store.Activities.Count(context.Background(), repository.ActivityFilter{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 0 {
		t.Errorf("activities = %d, want 0", total)
	}
}

func TestCreateTaskUnknownAssigneeRollsBack(t *testing.T) {
	svc, store := newTestServices(t)
	project := mustCreateProject(t, svc, "Website")
	in, err := validation.ParseCreateTask([]byte(`{"projectId":"` + project.ID + `","title":"Ghost","assigneeId":"user-ghost"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := svc.Tasks.Create(context.Background(), alice, in); err == nil {
		t.Fatal("expected foreign key failure for unknown assignee")
	}
	total, err := store.Tasks.Count(context.Background(), repository.TaskFilter{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 0 {
		t.Errorf("tasks = %d, want 0", total)
	}
}

func updateTask(t *testing.T, svc *Services, caller auth.Identity, id, body string) *model.Task {
	t.Helper()
	in, err := validation.ParseUpdateTask([]byte(body))
	if err != nil {
		t.Fatalf("parse update: %v", err)
	}
	task, err := svc.Tasks.Update(context.Background(), caller, id, in)
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	return task
}

func TestUpdateTaskAssignee(t *testing.T) {
	svc, store := newTestServices(t)
	project := mustCreateProject(t, svc, "Website")
	task := mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"Docs","assigneeId":"user-bob"}`)
	before := countType(taskActivity(t, store, task.ID), model.ActivityTaskAssigned)

	updateTask(t, svc, alice, task.ID, `{"assigneeId":"user-bob"}`)
	if got := countType(taskActivity(t, store, task.ID), model.ActivityTaskAssigned); got != before {
		t.Errorf("same assignee logged: %d -> %d", before, got)
	}

	updated := updateTask(t, svc, alice, task.ID, `{"assigneeId":"user-carol"}`)
	if updated.AssigneeID == nil || *updated.AssigneeID != "user-carol" {
		t.Errorf("assignee = %v", updated.AssigneeID)
	}
	if got := countType(taskActivity(t, store, task.ID), model.ActivityTaskAssigned); got != before+1 {
		t.Errorf("reassign logged %d, want %d", got, before+1)
	}

	updated = updateTask(t, svc, bob, task.ID, `{"assigneeId":null}`)
	if updated.AssigneeID != nil {
		t.Errorf("assignee = %v, want nil", *updated.AssigneeID)
	}
	feed := taskActivity(t, store, task.ID)
	if got := countType(feed, model.ActivityTaskAssigned); got != before+2 {
		t.Fatalf("unassign logged %d, want %d", got, before+2)
	}
	if feed[0].Type != model.ActivityTaskAssigned || feed[0].UserID != bob.UserID {
		t.Errorf("unassign attributed to %q, want %q", feed[0].UserID, bob.UserID)
	}

	updateTask(t, svc, alice, task.ID, `{"title":"Renamed"}`)
	if got := countType(taskActivity(t, store, task.ID), model.ActivityTaskAssigned); got != before+2 {
		t.Errorf("omitted assignee logged: %d", got)
	}
}

func TestUpdateTaskCompletion(t *testing.T) {
	svc, store := newTestServices(t)
	project := mustCreateProject(t, svc, "Website")
	task := mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"Docs"}`)

	updateTask(t, svc, alice, task.ID, `{"status":"review"}`)
	if got := countType(taskActivity(t, store, task.ID), model.ActivityTaskCompleted); got != 0 {
		t.Errorf("review logged completion")
	}

	done := updateTask(t, svc, alice, task.ID, `{"status":"done","title":"Final docs","projectId":"elsewhere"}`)
	if done.Status != model.StatusDone || done.ProjectID != project.ID {
		t.Errorf("task = %s in %s", done.Status, done.ProjectID)
	}
	feed := taskActivity(t, store, task.ID)
	if got := countType(feed, model.ActivityTaskCompleted); got != 1 {
		t.Fatalf("completed logged %d, want 1", got)
	}
	details, _ := feed[0].Details()
	if completed, ok := details.(model.TaskCompleted); !ok || completed.TaskTitle != "Final docs" {
		t.Errorf("details = %+v", details)
	}
}

func TestUpdateMissingTask(t *testing.T) {
	svc, _ := newTestServices(t)
	in, _ := validation.ParseUpdateTask([]byte(`{"title":"x"}`))
	if _, err := svc.Tasks.Update(context.Background(), alice, "missing", in); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestTaskListPagination(t *testing.T) {
	svc, _ := newTestServices(t)
	project := mustCreateProject(t, svc, "Website")
	for i := 0; i < 5; i++ {
		mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"T"}`)
	}
	page, err := svc.Tasks.List(context.Background(), repository.TaskFilter{ProjectID: project.ID}, pagination.Params{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Data) != 2 || page.Pagination.Total != 5 || page.Pagination.TotalPages != 3 {
		t.Errorf("page = %+v", page.Pagination)
	}

	empty, err := svc.Tasks.List(context.Background(), repository.TaskFilter{Status: "review"}, pagination.Params{Page: 1, Limit: 50})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if empty.Data == nil || len(empty.Data) != 0 || empty.Pagination.TotalPages != 0 {
		t.Errorf("empty page = %+v", empty)
	}
}

func TestProjectUpdateAndMembers(t *testing.T) {
	svc, store := newTestServices(t)
	ctx := context.Background()
	project := mustCreateProject(t, svc, "Website")

	in, _ := validation.ParseUpdateProject([]byte(`{"name":"Web","status":"completed"}`))
	updated, err := svc.Projects.Update(ctx, alice, project.ID, in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Web" || updated.Status != model.ProjectCompleted {
		t.Errorf("updated = %+v", updated)
	}

	add, _ := validation.ParseAddMember([]byte(`{"userId":"user-bob"}`))
	member, err := svc.Projects.AddMember(ctx, alice, project.ID, add)
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if member.Role != model.MemberMember || member.User == nil || member.User.Name != "Bob Martinez" {
		t.Errorf("member = %+v", member)
	}

	got, err := svc.Projects.Get(ctx, project.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Members) != 1 || got.Owner.Email != "alice@example.com" {
		t.Errorf("project = %+v", got)
	}

	if err := svc.Projects.RemoveMember(ctx, alice, project.ID, "user-bob"); err != nil {
		t.Fatalf("RemoveMember: %v", err)
	}
	if err := svc.Projects.RemoveMember(ctx, alice, project.ID, "user-bob"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second remove err = %v", err)
	}

	feed, err := store.Activities.List(ctx, repository.ActivityFilter{ProjectID: project.ID}, 0, 20)
	if err != nil {
		t.Fatalf("activity: %v", err)
	}
	want := []model.ActivityType{model.ActivityMemberRemoved, model.ActivityMemberAdded, model.ActivityProjectUpdated, model.ActivityProjectCreated}
	if len(feed) != len(want) {
		t.Fatalf("feed has %d entries, want %d", len(feed), len(want))
	}
	for i, typ := range want {
		if feed[i].Type != typ {
			t.Errorf("feed[%d] = %s, want %s", i, feed[i].Type, typ)
		}
	}
}

func TestProjectBoard(t *testing.T) {
	svc, _ := newTestServices(t)
	project := mustCreateProject(t, svc, "Website")
	mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"A","status":"review"}`)
	mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"B"}`)
	mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"C"}`)

	board, err := svc.Projects.Board(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if len(board.Columns) != 4 {
		t.Fatalf("columns = %d", len(board.Columns))
	}
	todo := board.Columns[0]
	if todo.Status != model.StatusTodo || len(todo.Tasks) != 2 || todo.Tasks[0].Title != "B" {
		t.Errorf("todo column = %+v", todo)
	}
	if len(board.Columns[2].Tasks) != 1 {
		t.Errorf("review column = %+v", board.Columns[2])
	}
}

func TestProjectDelete(t *testing.T) {
	svc, store := newTestServices(t)
	ctx := context.Background()
	project := mustCreateProject(t, svc, "Website")
	mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"A"}`)

	if err := svc.Projects.Delete(ctx, project.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Projects.Get(ctx, project.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Get err = %v", err)
	}
	if total, _ := store.Tasks.Count(ctx, repository.TaskFilter{}); total != 0 {
		t.Errorf("tasks = %d", total)
	}
}

func createComment(svc *Services, body string) (*model.Comment, error) {
	in, err := validation.ParseCreateComment([]byte(body))
	if err != nil {
		return nil, err
	}
	return svc.Comments.Create(context.Background(), bob, in)
}

func TestCommentThreading(t *testing.T) {
	svc, store := newTestServices(t)
	project := mustCreateProject(t, svc, "Website")
	task := mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"Docs"}`)
	other := mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"Other"}`)

	root, err := createComment(svc, `{"taskId":"`+task.ID+`","content":"first"}`)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if root.AuthorID != bob.UserID || root.Author == nil || root.Replies == nil {
		t.Errorf("root = %+v", root)
	}
	reply, err := createComment(svc, `{"taskId":"`+task.ID+`","content":"reply","parentId":"`+root.ID+`"}`)
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if _, err := createComment(svc, `{"taskId":"`+task.ID+`","content":"second"}`); err != nil {
		t.Fatalf("second: %v", err)
	}

	var verrs validation.Errors
	if _, err := createComment(svc, `{"taskId":"`+task.ID+`","content":"deep","parentId":"`+reply.ID+`"}`); !errors.As(err, &verrs) {
		t.Errorf("reply to reply err = %v, want validation error", err)
	}
	if _, err := createComment(svc, `{"taskId":"`+other.ID+`","content":"cross","parentId":"`+root.ID+`"}`); !errors.As(err, &verrs) {
		t.Errorf("cross-task reply err = %v, want validation error", err)
	}
	if _, err := createComment(svc, `{"taskId":"`+task.ID+`","content":"lost","parentId":"missing"}`); !errors.As(err, &verrs) {
		t.Errorf("missing parent err = %v, want validation error", err)
	}
	if _, err := createComment(svc, `{"taskId":"missing","content":"x"}`); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("missing task err = %v, want ErrRecordNotFound", err)
	}

	threads, err := svc.Comments.ListThreaded(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("ListThreaded: %v", err)
	}
	if len(threads) != 2 {
		t.Fatalf("top-level = %d, want 2", len(threads))
	}
	if threads[0].ID != root.ID || len(threads[0].Replies) != 1 || threads[0].Replies[0].ID != reply.ID {
		t.Errorf("thread = %+v", threads[0])
	}
	if threads[1].Replies == nil || len(threads[1].Replies) != 0 {
		t.Errorf("second thread replies = %v", threads[1].Replies)
	}

	if got := countType(taskActivity(t, store, task.ID), model.ActivityCommentAdded); got != 3 {
		t.Errorf("comment_added = %d, want 3", got)
	}
}

func TestThreadCommentsDropsDeepReplies(t *testing.T) {
	ptr := func(s string) *string { return &s }
	comments := []model.Comment{
		{ID: "a"},
		{ID: "b", ParentID: ptr("a")},
		{ID: "c", ParentID: ptr("b")},
		{ID: "d"},
		{ID: "e", ParentID: ptr("a")},
	}
	threads := threadComments(comments)
	if len(threads) != 2 || threads[0].ID != "a" || threads[1].ID != "d" {
		t.Fatalf("threads = %+v", threads)
	}
	replies := threads[0].Replies
	if len(replies) != 2 || replies[0].ID != "b" || replies[1].ID != "e" {
		t.Errorf("replies = %+v", replies)
	}
	for _, r := range replies {
		if len(r.Replies) != 0 {
			t.Errorf("reply %s has nested replies", r.ID)
		}
	}
}

func TestDigestSummary(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	project := mustCreateProject(t, svc, "Website")
	mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"Late","dueDate":"2024-03-10T00:00:00Z","assigneeId":"user-bob"}`)
	mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"Finished late","status":"done","dueDate":"2024-03-10T00:00:00Z"}`)
	mustCreateTask(t, svc, `{"projectId":"`+project.ID+`","title":"Future","dueDate":"2024-04-10T00:00:00Z"}`)

	now := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	summary, err := svc.Digest.Summary(ctx, now)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	for _, want := range []string{"Mar 12, 2024", "- todo: 2", "Done: 1", "! Late (Website)", "due 2d ago", "Bob Martinez"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
	if strings.Contains(summary, "Finished late") || strings.Contains(summary, "Future") {
		t.Errorf("summary lists tasks that are not overdue:\n%s", summary)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	svc, store := newEmptyServices(t)
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := svc.Seed.Run(ctx); err != nil {
			t.Fatalf("Seed run %d: %v", i, err)
		}
	}
	tasks, err := store.Tasks.Count(ctx, repository.TaskFilter{ProjectID: SeedProjectID})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if tasks != 8 {
		t.Errorf("tasks = %d, want 8", tasks)
	}
	logged, err := store.Activities.Count(ctx, repository.ActivityFilter{ProjectID: SeedProjectID})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if logged != 1 {
		t.Errorf("activities = %d, want 1", logged)
	}
	labels, err := svc.Labels.List(ctx)
	if err != nil {
		t.Fatalf("labels: %v", err)
	}
	if len(labels) != 4 {
		t.Errorf("labels = %d, want 4", len(labels))
	}
	project, err := svc.Projects.Get(ctx, SeedProjectID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(project.Members) != 2 || project.Count.Tasks != 8 {
		t.Errorf("project = %+v", project)
	}
}

func TestUserServiceUpdate(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	in, _ := validation.ParseUpdateUser([]byte(`{"name":"Bobby","avatarUrl":"https://example.com/b.png"}`))
	user, err := svc.Users.Update(ctx, "user-bob", in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if user.Name != "Bobby" || user.AvatarURL == nil {
		t.Errorf("user = %+v", user)
	}
	if _, err := svc.Users.Update(ctx, "ghost", in); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v", err)
	}
	found, err := svc.Users.Search(ctx, "nobody", 50)
	if err != nil || found == nil || len(found) != 0 {
		t.Errorf("Search = %v, %v", found, err)
	}
}

func TestBuildDailySpec(t *testing.T) {
	spec, err := buildDailySpec("09:30")
	if err != nil || spec != "0 30 9 * * *" {
		t.Errorf("spec = %q, %v", spec, err)
	}
	for _, bad := range []string{"9", "24:00", "10:60", "ab:cd"} {
		if _, err := buildDailySpec(bad); err == nil {
			t.Errorf("buildDailySpec(%q) accepted", bad)
		}
	}
}

func TestSchedulerSchedule(t *testing.T) {
	s := NewSchedulerService(time.UTC, quietLogger())
	if _, err := s.Schedule("digest", "", time.Hour, func() {}); err != nil {
		t.Fatalf("interval: %v", err)
	}
	if _, err := s.Schedule("digest", "08:00", 0, func() {}); err != nil {
		t.Fatalf("daily: %v", err)
	}
	if _, err := s.Schedule("digest", "", 0, func() {}); err == nil {
		t.Error("zero interval accepted")
	}
	if s.Entries() != 2 {
		t.Errorf("entries = %d, want 2", s.Entries())
	}
}

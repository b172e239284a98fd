package model

import "testing"

func TestNewActivityRoundTripsDetails(t *testing.T) {
	projectID := "p1"
	taskID := "t1"
	activity, err := NewActivity("u1", &projectID, &taskID, TaskAssigned{TaskTitle: "Ship it", AssignedBy: "u2"})
	if err != nil {
		t.Fatalf("NewActivity: %v", err)
	}
	if activity.Type != ActivityTaskAssigned {
		t.Fatalf("type = %q, want %q", activity.Type, ActivityTaskAssigned)
	}

	details, err := activity.Details()
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	assigned, ok := details.(TaskAssigned)
	if !ok {
		t.Fatalf("details type = %T, want TaskAssigned", details)
	}
	if assigned.TaskTitle != "Ship it" || assigned.AssignedBy != "u2" {
		t.Errorf("details = %+v", assigned)
	}
}

func TestDetailsUnknownType(t *testing.T) {
	activity := Activity{Type: "renamed_everything"}
	if _, err := activity.Details(); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestDetailsEmptyMetadata(t *testing.T) {
	activity := Activity{Type: ActivityCommentAdded}
	details, err := activity.Details()
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if _, ok := details.(CommentAdded); !ok {
		t.Fatalf("details type = %T, want CommentAdded", details)
	}
}

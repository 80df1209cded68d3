package task

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Run("assigns id and created at", func(t *testing.T) {
		before := time.Now()
		created, err := New(NewTaskInput{Title: "Fix bug"})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		if created.ID == "" {
			t.Error("expected a generated ID")
		}
		if created.CreatedAt.Before(before) {
			t.Errorf("expected CreatedAt >= %v, got %v", before, created.CreatedAt)
		}
		if created.Status != StatusToDo {
			t.Errorf("expected default status %q, got %q", StatusToDo, created.Status)
		}
	})

	t.Run("distinct ids for identical input", func(t *testing.T) {
		a, err := New(NewTaskInput{Title: "Same"})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		b, err := New(NewTaskInput{Title: "Same"})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if a.ID == b.ID {
			t.Errorf("expected distinct IDs, both were %q", a.ID)
		}
	})

	t.Run("trims text fields", func(t *testing.T) {
		created, err := New(NewTaskInput{
			Title:       "  Ship release  ",
			Description: " notes \n",
			Assignee:    " alice ",
		})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		if created.Title != "Ship release" {
			t.Errorf("expected trimmed title, got %q", created.Title)
		}
		if created.Description != "notes" {
			t.Errorf("expected trimmed description, got %q", created.Description)
		}
		if created.Assignee != "alice" {
			t.Errorf("expected trimmed assignee, got %q", created.Assignee)
		}
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		created, err := New(NewTaskInput{Title: "Review", Status: "In Progress"})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if created.Status != StatusInProgress {
			t.Errorf("expected status %q, got %q", StatusInProgress, created.Status)
		}
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := New(NewTaskInput{Title: "   "})
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
		if len(verr.Fields) != 1 || verr.Fields[0].Field != "title" {
			t.Fatalf("expected a single title field error, got %+v", verr.Fields)
		}
		if !strings.Contains(verr.Fields[0].Message, "title") {
			t.Errorf("expected message to reference the title, got %q", verr.Fields[0].Message)
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := New(NewTaskInput{Title: "Deploy", Status: "Blocked"})
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
		if len(verr.Fields) != 1 || verr.Fields[0].Field != "status" {
			t.Fatalf("expected a single status field error, got %+v", verr.Fields)
		}
	})

	t.Run("all violations reported together", func(t *testing.T) {
		_, err := New(NewTaskInput{Status: "nope"})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
		if len(verr.Fields) != 2 {
			t.Fatalf("expected 2 field errors, got %d", len(verr.Fields))
		}
		if got := verr.Messages(); len(got) != 2 {
			t.Errorf("expected 2 messages, got %v", got)
		}
	})
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if Status("Archived").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}

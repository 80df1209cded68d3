package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FieldError describes a single violated constraint on task input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every field that failed validation. It is
// returned by New so callers can map failures to per-field messages.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("task validation failed: %s", strings.Join(e.Messages(), "; "))
}

// Messages returns the human-readable message for each violated field.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

// NewTaskInput carries caller-settable fields for task construction.
// ID and CreatedAt are assigned by New and cannot be supplied.
type NewTaskInput struct {
	Title       string
	Description string
	Status      string
	Assignee    string
}

// New validates input and constructs a Task. Text fields are trimmed,
// an omitted status defaults to "To Do", and a fresh ID and CreatedAt
// are assigned. On failure it returns a *ValidationError listing every
// violated field.
func New(input NewTaskInput) (*Task, error) {
	verr := &ValidationError{}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		verr.Fields = append(verr.Fields, FieldError{
			Field:   "title",
			Message: "Please provide a title for the task.",
		})
	}

	status := StatusToDo
	if s := strings.TrimSpace(input.Status); s != "" {
		status = Status(s)
		if !status.Valid() {
			verr.Fields = append(verr.Fields, FieldError{
				Field:   "status",
				Message: fmt.Sprintf("`%s` is not a valid status; must be one of: To Do, In Progress, Done.", s),
			})
		}
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}

	return &Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		Assignee:    strings.TrimSpace(input.Assignee),
		CreatedAt:   time.Now(),
	}, nil
}

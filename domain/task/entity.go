package task

import "time"

// Status represents the board column a task belongs to.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// Statuses lists the three board columns in display order.
var Statuses = []Status{StatusToDo, StatusInProgress, StatusDone}

// Valid reports whether s is one of the three board statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is the core domain entity representing a board work item.
// ID and CreatedAt are assigned at construction and never change.
type Task struct {
	ID          string    `gorm:"primarykey;size:36" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"size:1000" json:"description,omitempty"`
	Status      Status    `gorm:"size:20;not null" json:"status"`
	Assignee    string    `gorm:"size:100" json:"assignee,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}

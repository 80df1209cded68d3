// Package board implements the terminal task board.
package board

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/teamboard/client"
	task "github.com/example/teamboard/domain/task"
)

const requestTimeout = 10 * time.Second

// API is the slice of the board client the views depend on.
type API interface {
	List(ctx context.Context) ([]task.Task, error)
	Create(ctx context.Context, req client.CreateTaskRequest) (*task.Task, error)
}

type tasksLoadedMsg struct {
	tasks []task.Task
}

type listFailedMsg struct {
	err error
}

type taskCreatedMsg struct {
	task *task.Task
}

type createFailedMsg struct {
	err error
}

// Store holds the board's view of the task list. It keeps the last
// good snapshot: a failed refresh never clears what is on screen.
type Store struct {
	api       API
	tasks     []task.Task
	isLoading bool
	lastErr   error
}

// NewStore creates a store backed by the given API.
func NewStore(api API) *Store {
	return &Store{api: api}
}

// Tasks returns the current snapshot.
func (s *Store) Tasks() []task.Task {
	return s.tasks
}

// IsLoading reports whether a refresh is in flight.
func (s *Store) IsLoading() bool {
	return s.isLoading
}

// Err returns the error from the most recent refresh, or nil.
func (s *Store) Err() error {
	return s.lastErr
}

// ByStatus filters the snapshot into one column.
func (s *Store) ByStatus(status task.Status) []task.Task {
	var out []task.Task
	for _, t := range s.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Refresh marks the store loading and returns a command that fetches
// the full task list.
func (s *Store) Refresh() tea.Cmd {
	s.isLoading = true
	api := s.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		tasks, err := api.List(ctx)
		if err != nil {
			return listFailedMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

// Apply folds a fetch result into the store. On success the snapshot
// is replaced wholesale; on failure it is left untouched.
func (s *Store) Apply(msg tea.Msg) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		s.isLoading = false
		s.lastErr = nil
		s.tasks = msg.tasks
	case listFailedMsg:
		s.isLoading = false
		s.lastErr = msg.err
	}
}

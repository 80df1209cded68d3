package notification

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	"github.com/example/teamboard/events"
)

// ActivityEntry is one logged board activity.
type ActivityEntry struct {
	TaskID    string    `json:"task_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Module keeps an in-process activity log of board events. It is a
// driven adapter: it only consumes events and never pushes anything to
// clients.
type Module struct {
	entries []ActivityEntry
	mu      sync.RWMutex
}

var _ mono.Module = (*Module)(nil)
var _ mono.EventConsumerModule = (*Module)(nil)

func NewModule() *Module {
	return &Module{
		entries: make([]ActivityEntry, 0),
	}
}

func (m *Module) Name() string {
	return "notification"
}

func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}

	log.Printf("[notification] Registered event consumers: TaskCreated")
	return nil
}

func (m *Module) handleTaskCreated(_ context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	assignee := event.Assignee
	if assignee == "" {
		assignee = "unassigned"
	}
	log.Printf("[notification] Task created: %s - %s (%s)", event.TaskID, event.Title, assignee)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, ActivityEntry{
		TaskID:    event.TaskID,
		Message:   fmt.Sprintf("New task '%s' added to %s", event.Title, event.Status),
		Timestamp: time.Now(),
	})
	return nil
}

// Activity returns a copy of the logged entries.
func (m *Module) Activity() []ActivityEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]ActivityEntry, len(m.entries))
	copy(result, m.entries)
	return result
}

func (m *Module) Start(_ context.Context) error {
	log.Println("[notification] Module started - listening for task events")
	return nil
}

func (m *Module) Stop(_ context.Context) error {
	log.Println("[notification] Module stopped")
	return nil
}

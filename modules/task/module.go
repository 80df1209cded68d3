package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	domain "github.com/example/teamboard/domain/task"
	"github.com/example/teamboard/events"
	"github.com/example/teamboard/modules/cache"
	"github.com/example/teamboard/modules/store"
)

// Module provides the task core domain. Besides backing the HTTP API
// it registers create/list request-reply services on the bus.
type Module struct {
	gateway  *store.Gateway
	cacheMod *cache.Module
	svc      *Service
	eventBus mono.EventBus
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.EventEmitterModule = (*Module)(nil)

// NewModule creates the task module on the given gateway and cache.
func NewModule(gateway *store.Gateway, cacheMod *cache.Module) *Module {
	return &Module{
		gateway:  gateway,
		cacheMod: cacheMod,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "task"
}

// GetService returns the task service. Valid after Start.
func (m *Module) GetService() *Service {
	return m.svc
}

// SetEventBus receives the event bus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module publishes.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskCreatedV1.ToBase(),
	}
}

// RegisterServices registers the create and list request-reply services.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.createTask,
	); err != nil {
		return fmt.Errorf("failed to register create service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listTasks,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	log.Printf("[task] Registered services: services.task.{create,list}")
	return nil
}

// Start builds the repository and service.
func (m *Module) Start(_ context.Context) error {
	cacheSvc := m.cacheMod.Service()
	if cacheSvc == nil {
		cacheSvc = cache.NewNoop()
	}

	m.svc = NewService(NewRepository(m.gateway), cacheSvc)
	if m.eventBus == nil {
		log.Println("[task] Warning: eventBus not set, events will not be published")
	} else {
		m.svc.SetEventBus(m.eventBus)
	}

	log.Println("[task] Module started")
	return nil
}

// Stop releases nothing; the store module owns the connection.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[task] Module stopped")
	return nil
}

// createTask handles the task.create service request.
func (m *Module) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	created, err := m.svc.Create(ctx, domain.NewTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Assignee:    req.Assignee,
	})
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(created), nil
}

// listTasks handles the task.list service request.
func (m *Module) listTasks(ctx context.Context, _ ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks, err := m.svc.List(ctx)
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for i := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(&tasks[i]))
	}
	return response, nil
}

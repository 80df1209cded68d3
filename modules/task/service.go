package task

import (
	"context"
	"fmt"
	"log"

	"github.com/go-monolith/mono"

	domain "github.com/example/teamboard/domain/task"
	"github.com/example/teamboard/events"
	"github.com/example/teamboard/modules/cache"
)

// listCacheKey is the cache key for the full task list.
const listCacheKey = "list"

// Service implements the two board operations: list all tasks and
// create one. Creation is not idempotent; identical payloads produce
// distinct records.
type Service struct {
	repo     *Repository
	cache    cache.CacheService
	eventBus mono.EventBus
}

// NewService creates the task service.
func NewService(repo *Repository, c cache.CacheService) *Service {
	return &Service{
		repo:  repo,
		cache: c,
	}
}

// SetEventBus wires the event bus for TaskCreated publications.
func (s *Service) SetEventBus(bus mono.EventBus) {
	s.eventBus = bus
}

// List returns all tasks, serving from the cache when possible.
// Storage and connection failures propagate to the caller.
func (s *Service) List(ctx context.Context) ([]domain.Task, error) {
	var cached []domain.Task
	found, err := s.cache.Get(ctx, listCacheKey, &cached)
	if err != nil {
		// Fall through to storage on cache errors.
		log.Printf("[task] Warning: cache read failed: %v", err)
	}
	if found {
		return cached, nil
	}

	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, listCacheKey, tasks); err != nil {
		log.Printf("[task] Warning: failed to cache task list: %v", err)
	}
	return tasks, nil
}

// Create validates input, persists the new task, and invalidates the
// list cache. Validation failures are returned as *domain.ValidationError
// before anything is persisted.
func (s *Service) Create(ctx context.Context, input domain.NewTaskInput) (*domain.Task, error) {
	created, err := domain.New(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		log.Printf("[task] Warning: failed to invalidate task list cache: %v", err)
	}

	if s.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:    created.ID,
			Title:     created.Title,
			Status:    string(created.Status),
			Assignee:  created.Assignee,
			CreatedAt: created.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(s.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; the task is already saved.
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %s: %v", created.ID, err)
		}
	}

	return created, nil
}

package task

import (
	"context"
	"fmt"

	domain "github.com/example/teamboard/domain/task"
	"github.com/example/teamboard/modules/store"
)

// Repository provides access to the task collection. Every operation
// goes through the gateway, so the first request establishes the
// connection.
type Repository struct {
	gateway *store.Gateway
}

// NewRepository creates a task repository on the given gateway.
func NewRepository(gateway *store.Gateway) *Repository {
	return &Repository{gateway: gateway}
}

// FindAll retrieves all tasks in storage-native order.
func (r *Repository) FindAll(ctx context.Context) ([]domain.Task, error) {
	db, err := r.gateway.Connect(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0)
	if err := db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	return tasks, nil
}

// Insert saves a new task.
func (r *Repository) Insert(ctx context.Context, t *domain.Task) error {
	db, err := r.gateway.Connect(ctx)
	if err != nil {
		return err
	}

	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

// Count returns the number of stored tasks.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	db, err := r.gateway.Connect(ctx)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := db.WithContext(ctx).Model(&domain.Task{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return n, nil
}

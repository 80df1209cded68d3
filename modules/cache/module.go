package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

// Module provides the task list cache. With an empty Redis address the
// module degrades to a no-op cache so the board works without Redis.
type Module struct {
	redisAddr string
	client    *redis.Client
	service   CacheService
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates the cache module. redisAddr may be empty.
func NewModule(redisAddr string) *Module {
	return &Module{
		redisAddr: redisAddr,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "cache"
}

// Service returns the CacheService for consumers. Valid after Start.
func (m *Module) Service() CacheService {
	return m.service
}

// Start connects to Redis, or installs the no-op cache when no address
// is configured.
func (m *Module) Start(ctx context.Context) error {
	if m.redisAddr == "" {
		m.service = NewNoop()
		log.Println("[cache] REDIS_ADDR not set, caching disabled")
		return nil
	}

	m.client = redis.NewClient(&redis.Options{Addr: m.redisAddr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := m.client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis at %s: %w", m.redisAddr, err)
	}

	m.service = New(m.client, "tasks:", defaultTTL)
	log.Printf("[cache] Connected to Redis at %s (TTL: %s)", m.redisAddr, defaultTTL)
	return nil
}

// Stop closes the Redis connection, if any.
func (m *Module) Stop(_ context.Context) error {
	if m.service != nil {
		if err := m.service.Close(); err != nil {
			return fmt.Errorf("failed to close cache: %w", err)
		}
	}
	log.Println("[cache] Module stopped")
	return nil
}

// Health reports cache availability.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.client == nil {
		return mono.HealthStatus{
			Healthy: true,
			Message: "caching disabled",
		}
	}

	if err := m.client.Ping(ctx).Err(); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("redis ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"addr": m.redisAddr,
		},
	}
}

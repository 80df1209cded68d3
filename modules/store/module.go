package store

import (
	"context"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
)

// Module wraps the Gateway as a mono module so the connection is torn
// down on shutdown. The connection itself is established lazily on the
// first request, not at Start.
type Module struct {
	gateway *Gateway
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates the store module for the given connection string.
func NewModule(dsn string) *Module {
	return &Module{
		gateway: NewGateway(dsn),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "store"
}

// Gateway returns the shared persistence gateway for other modules.
func (m *Module) Gateway() *Gateway {
	return m.gateway
}

// Start logs readiness. Connecting is deferred to the first request so
// a slow or unreachable store does not block startup.
func (m *Module) Start(_ context.Context) error {
	log.Println("[store] Module started (connection established on first use)")
	return nil
}

// Stop closes the cached connection, if one was established.
func (m *Module) Stop(_ context.Context) error {
	if err := m.gateway.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	log.Println("[store] Module stopped")
	return nil
}

// Health pings the store through the gateway.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	conn, err := m.gateway.Connect(ctx)
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("store unreachable: %v", err),
		}
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get sql.DB: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("store ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver": "sqlite",
		},
	}
}

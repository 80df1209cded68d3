// Package store provides the connection-caching gateway to the task store.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/teamboard/domain/task"
)

// Gateway hands out a single shared connection to the task store.
// Connection establishment is lazy and memoized: concurrent callers
// await the same in-flight attempt, and a failed attempt is not cached
// so the next call retries.
type Gateway struct {
	dsn  string
	open func(dsn string) (*gorm.DB, error)

	mu   sync.RWMutex
	conn *gorm.DB
	sf   singleflight.Group
}

// NewGateway creates a gateway for the given connection string.
func NewGateway(dsn string) *Gateway {
	return &Gateway{
		dsn:  dsn,
		open: openSQLite,
	}
}

func openSQLite(dsn string) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
}

// Connect returns the shared connection handle, establishing it on
// first use. Safe to call repeatedly and concurrently; at most one
// connection attempt is in flight at a time.
func (g *Gateway) Connect(ctx context.Context) (*gorm.DB, error) {
	g.mu.RLock()
	conn := g.conn
	g.mu.RUnlock()
	if conn != nil {
		return conn, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err, _ := g.sf.Do("connect", func() (any, error) {
		db, err := g.open(g.dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to task store: %w", err)
		}

		if err := db.AutoMigrate(&task.Task{}); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		g.mu.Lock()
		g.conn = db
		g.mu.Unlock()
		return db, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*gorm.DB), nil
}

// Close tears down the cached connection, if any.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.conn == nil {
		return nil
	}

	sqlDB, err := g.conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	g.conn = nil

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close task store: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/example/teamboard/modules/api"
	"github.com/example/teamboard/modules/cache"
	"github.com/example/teamboard/modules/notification"
	"github.com/example/teamboard/modules/store"
	"github.com/example/teamboard/modules/task"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Team Task Board ===")

	// The connection string is the one mandatory configuration value.
	// Missing configuration is fatal at startup, never at request time.
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("Please define the DATABASE_URL environment variable")
	}

	port := 3000
	if p := os.Getenv("PORT"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			log.Fatalf("Invalid PORT value %q: %v", p, err)
		}
		port = parsed
	}

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	storeModule := store.NewModule(dsn)
	cacheModule := cache.NewModule(os.Getenv("REDIS_ADDR"))
	taskModule := task.NewModule(storeModule.Gateway(), cacheModule)
	apiModule := api.NewModule(port)
	apiModule.SetTaskModule(taskModule)

	// Order: infrastructure first, then the core domain, then the
	// driving adapter.
	app.Register(storeModule)
	app.Register(cacheModule)
	app.Register(notification.NewModule())
	app.Register(taskModule)
	app.Register(apiModule)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(port)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(port int) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%d):", port)
	log.Println("  GET    /api/tasks  - List all tasks")
	log.Println("  POST   /api/tasks  - Create a task")
	log.Println("  GET    /health     - Health check")
	log.Println("")
	log.Println("Board client: go run ./cmd/board")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

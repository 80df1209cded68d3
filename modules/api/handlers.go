package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	domain "github.com/example/teamboard/domain/task"
	taskmod "github.com/example/teamboard/modules/task"
)

// Handlers translates HTTP requests into task service calls. Every
// outcome, success or failure, is reported through the uniform
// {success, data|error} envelope; nothing panics out to the transport.
type Handlers struct {
	svc *taskmod.Service
}

// NewHandlers creates the HTTP handlers for the given task service.
func NewHandlers(svc *taskmod.Service) *Handlers {
	return &Handlers{svc: svc}
}

// NewRouter builds the Fiber app with middleware and routes. Shared by
// the module and the handler tests.
func NewRouter(svc *taskmod.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Team Task Board",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	h := NewHandlers(svc)
	app.Get("/health", h.Health)

	tasks := app.Group("/api/tasks")
	tasks.Get("/", h.ListTasks)
	tasks.Post("/", h.CreateTask)

	return app
}

// Health handles GET /health.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
		},
	})
}

// ListTasks handles GET /api/tasks.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.svc.List(c.Context())
	if err != nil {
		log.Printf("[api] list tasks failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(SuccessResponse{
		Success: true,
		Data:    tasks,
	})
}

// CreateTask handles POST /api/tasks.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: []string{"Invalid request body."},
		})
	}

	created, err := h.svc.Create(c.Context(), domain.NewTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Assignee:    req.Assignee,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: verr.Messages(),
			})
		}

		log.Printf("[api] create task failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{
		Success: true,
		Data:    created,
	})
}

// errorHandler envelopes errors that escape route handlers.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error: message,
	})
}

package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/example/teamboard/modules/cache"
	"github.com/example/teamboard/modules/store"
	taskmod "github.com/example/teamboard/modules/task"
)

// newTestApp builds a router over an in-memory store.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return newTestAppWithDSN(t, ":memory:")
}

func newTestAppWithDSN(t *testing.T, dsn string) *fiber.App {
	t.Helper()

	gw := store.NewGateway(dsn)
	t.Cleanup(func() {
		if err := gw.Close(); err != nil {
			t.Errorf("failed to close gateway: %v", err)
		}
	})

	svc := taskmod.NewService(taskmod.NewRepository(gw), cache.NewNoop())
	return NewRouter(svc)
}

type taskPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee"`
	CreatedAt   string `json:"createdAt"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response envelope: %v", err)
	}
	return resp.StatusCode, env
}

func TestCreateTask(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		app := newTestApp(t)

		status, env := doRequest(t, app, http.MethodPost, "/api/tasks",
			`{"title":"Fix bug","description":"NPE on save"}`)

		if status != fiber.StatusCreated {
			t.Fatalf("expected status 201, got %d", status)
		}
		if !env.Success {
			t.Fatal("expected success envelope")
		}

		var created taskPayload
		if err := json.Unmarshal(env.Data, &created); err != nil {
			t.Fatalf("failed to decode data: %v", err)
		}
		if created.Title != "Fix bug" {
			t.Errorf("expected title %q, got %q", "Fix bug", created.Title)
		}
		if created.Status != "To Do" {
			t.Errorf("expected status %q, got %q", "To Do", created.Status)
		}
		if created.ID == "" {
			t.Error("expected an assigned id")
		}
		if created.CreatedAt == "" {
			t.Error("expected an assigned createdAt")
		}
	})

	t.Run("missing title", func(t *testing.T) {
		app := newTestApp(t)

		status, env := doRequest(t, app, http.MethodPost, "/api/tasks",
			`{"description":"no title"}`)

		if status != fiber.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", status)
		}
		if env.Success {
			t.Fatal("expected failure envelope")
		}

		var messages []string
		if err := json.Unmarshal(env.Error, &messages); err != nil {
			t.Fatalf("expected a message list, got %s", env.Error)
		}
		if len(messages) != 1 || !strings.Contains(messages[0], "title") {
			t.Errorf("expected a title message, got %v", messages)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		app := newTestApp(t)

		status, env := doRequest(t, app, http.MethodPost, "/api/tasks",
			`{"title":"Deploy","status":"Blocked"}`)

		if status != fiber.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", status)
		}

		var messages []string
		if err := json.Unmarshal(env.Error, &messages); err != nil {
			t.Fatalf("expected a message list, got %s", env.Error)
		}
		if len(messages) != 1 || !strings.Contains(messages[0], "status") {
			t.Errorf("expected a status message, got %v", messages)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		app := newTestApp(t)

		status, env := doRequest(t, app, http.MethodPost, "/api/tasks", `{"title":`)

		if status != fiber.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", status)
		}
		if env.Success {
			t.Fatal("expected failure envelope")
		}
	})

	t.Run("identical payloads create distinct records", func(t *testing.T) {
		app := newTestApp(t)

		_, first := doRequest(t, app, http.MethodPost, "/api/tasks", `{"title":"Same"}`)
		_, second := doRequest(t, app, http.MethodPost, "/api/tasks", `{"title":"Same"}`)

		var a, b taskPayload
		if err := json.Unmarshal(first.Data, &a); err != nil {
			t.Fatalf("failed to decode first task: %v", err)
		}
		if err := json.Unmarshal(second.Data, &b); err != nil {
			t.Fatalf("failed to decode second task: %v", err)
		}
		if a.ID == b.ID {
			t.Errorf("expected distinct ids, both were %q", a.ID)
		}
	})
}

func TestListTasks(t *testing.T) {
	t.Run("empty collection returns empty array", func(t *testing.T) {
		app := newTestApp(t)

		status, env := doRequest(t, app, http.MethodGet, "/api/tasks", "")

		if status != fiber.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}
		if !env.Success {
			t.Fatal("expected success envelope")
		}
		if string(env.Data) != "[]" {
			t.Errorf("expected empty array data, got %s", env.Data)
		}
	})

	t.Run("round trip after create", func(t *testing.T) {
		app := newTestApp(t)

		doRequest(t, app, http.MethodPost, "/api/tasks",
			`{"title":"Ship release","description":"cut v1.2","assignee":"alice"}`)

		status, env := doRequest(t, app, http.MethodGet, "/api/tasks", "")
		if status != fiber.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}

		var tasks []taskPayload
		if err := json.Unmarshal(env.Data, &tasks); err != nil {
			t.Fatalf("failed to decode data: %v", err)
		}
		if len(tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(tasks))
		}

		got := tasks[0]
		if got.Title != "Ship release" {
			t.Errorf("expected title %q, got %q", "Ship release", got.Title)
		}
		if got.Description != "cut v1.2" {
			t.Errorf("expected description %q, got %q", "cut v1.2", got.Description)
		}
		if got.Assignee != "alice" {
			t.Errorf("expected assignee %q, got %q", "alice", got.Assignee)
		}
		if got.ID == "" || got.CreatedAt == "" {
			t.Error("expected generated id and createdAt")
		}
	})

	t.Run("store unreachable returns 500", func(t *testing.T) {
		app := newTestAppWithDSN(t, "/nonexistent-dir/tasks.db")

		status, env := doRequest(t, app, http.MethodGet, "/api/tasks", "")

		if status != fiber.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", status)
		}
		if env.Success {
			t.Fatal("expected failure envelope")
		}

		var message string
		if err := json.Unmarshal(env.Error, &message); err != nil {
			t.Fatalf("expected a string error, got %s", env.Error)
		}
		if message == "" {
			t.Error("expected a non-empty error message")
		}
	})
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
}

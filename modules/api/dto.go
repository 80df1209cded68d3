package api

// CreateTaskRequest is the HTTP request body for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee"`
}

// SuccessResponse is the uniform envelope for successful operations.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the uniform envelope for failed operations. Error is
// a list of per-field messages for validation failures and a single
// string otherwise.
type ErrorResponse struct {
	Success bool `json:"success"`
	Error   any  `json:"error"`
}

// HealthResponse is the HTTP response for the health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

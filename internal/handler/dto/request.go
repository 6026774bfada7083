package dto

import (
	"encoding/json"
	"time"
)

// CreateTaskRequest represents the request body for POST /kanban/tasks.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	AgentID     *string `json:"agent_id,omitempty"`
}

// UpdateTaskRequest represents the request body for PUT /kanban/tasks/{id}.
// Only fields present in the request are applied.
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Priority    *int       `json:"priority,omitempty"`
	AgentID     *string    `json:"agent_id,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// AppendActivityRequest represents the request body for POST /activity.
type AppendActivityRequest struct {
	EventType string          `json:"event_type"`
	Source    *string         `json:"source,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

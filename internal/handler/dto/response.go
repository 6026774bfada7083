package dto

import (
	"encoding/json"
	"time"

	"github.com/missionctl/missionctl/internal/domain"
)

// TaskResponse represents a full task record.
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	Priority    int        `json:"priority"`
	AgentID     *string    `json:"agent_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// ToTaskResponse converts domain.Task to TaskResponse.
func ToTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    task.Priority,
		AgentID:     task.AgentID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		CompletedAt: task.CompletedAt,
	}
}

// ToTaskResponses converts a slice of tasks, never returning a nil slice so
// empty lists encode as [] rather than null.
func ToTaskResponses(tasks []*domain.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}

// DeleteTaskResponse confirms a deletion.
type DeleteTaskResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ActivityEventResponse represents one activity log entry. Data is returned
// verbatim as stored.
type ActivityEventResponse struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	Source    *string         `json:"source"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToActivityEventResponse converts domain.ActivityEvent to ActivityEventResponse.
func ToActivityEventResponse(event *domain.ActivityEvent) ActivityEventResponse {
	return ActivityEventResponse{
		ID:        event.ID,
		EventType: event.EventType,
		Source:    event.Source,
		Data:      event.Data,
		CreatedAt: event.CreatedAt,
	}
}

// ToActivityEventResponses converts a slice of activity events.
func ToActivityEventResponses(events []*domain.ActivityEvent) []ActivityEventResponse {
	responses := make([]ActivityEventResponse, len(events))
	for i, event := range events {
		responses[i] = ToActivityEventResponse(event)
	}
	return responses
}

// AppendActivityResponse confirms an appended event.
type AppendActivityResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// AgentProfileResponse represents an agent profile record.
type AgentProfileResponse struct {
	AgentID     string          `json:"agent_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Config      json.RawMessage `json:"config"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToAgentProfileResponse converts domain.AgentProfile to AgentProfileResponse.
func ToAgentProfileResponse(profile *domain.AgentProfile) AgentProfileResponse {
	return AgentProfileResponse{
		AgentID:     profile.AgentID,
		Name:        profile.Name,
		Description: profile.Description,
		Config:      profile.Config,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}

// ToAgentProfileResponses converts a slice of agent profiles.
func ToAgentProfileResponses(profiles []*domain.AgentProfile) []AgentProfileResponse {
	responses := make([]AgentProfileResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = ToAgentProfileResponse(profile)
	}
	return responses
}

// HealthResponse represents the health check body.
type HealthResponse struct {
	Status     string `json:"status"`
	Database   string `json:"database"`
	InstanceID string `json:"instance_id"`
}

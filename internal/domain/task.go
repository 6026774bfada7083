package domain

import "time"

// TaskStatus represents the column a task sits in on the board.
type TaskStatus string

const (
	TaskStatusBacklog    TaskStatus = "backlog"
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// IsValid checks if the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusBacklog, TaskStatusTodo, TaskStatusInProgress,
		TaskStatusDone, TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// Validation bounds for task fields.
const (
	MaxTitleLength = 500
	MinPriority    = 0
	MaxPriority    = 10
)

// Task represents a card on the Kanban board.
type Task struct {
	ID          string
	Title       string
	Description *string
	Status      TaskStatus
	Priority    int
	AgentID     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/missionctl/missionctl/internal/domain"
	"github.com/missionctl/missionctl/internal/repository"
)

// TaskService coordinates validation and persistence of board tasks.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskParams holds the caller-supplied fields for task creation.
// Status and Priority fall back to board defaults when absent.
type CreateTaskParams struct {
	Title       string
	Description *string
	Status      domain.TaskStatus
	Priority    *int
	AgentID     *string
}

// CreateTask validates the input, fills defaults (backlog status, priority 0)
// and persists the task, returning the full record with server-assigned
// identifier and timestamps.
func (s *TaskService) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	if err := ValidateTitle(params.Title); err != nil {
		return nil, err
	}

	status := params.Status
	if status == "" {
		status = domain.TaskStatusBacklog
	}
	if err := ValidateStatus(status); err != nil {
		return nil, err
	}

	priority := 0
	if params.Priority != nil {
		priority = *params.Priority
	}
	if err := ValidatePriority(priority); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.Create(ctx, &domain.Task{
		Title:       params.Title,
		Description: params.Description,
		Status:      status,
		Priority:    priority,
		AgentID:     params.AgentID,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("task created",
		"task_id", task.ID,
		"status", task.Status,
		"priority", task.Priority,
	)

	return task, nil
}

// UpdateTaskParams holds the fields of a partial update. Nil fields are left
// untouched.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *int
	AgentID     *string
	CompletedAt *time.Time
}

func (p UpdateTaskParams) isEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.AgentID == nil && p.CompletedAt == nil
}

// UpdateTask validates the supplied fields and applies them in one statement.
// A request with no recognized fields is rejected before any SQL is built.
// Transitioning into done stamps completed_at unless the caller supplied a
// value, which is honored as-is.
func (s *TaskService) UpdateTask(ctx context.Context, taskID string, params UpdateTaskParams) (*domain.Task, error) {
	if params.isEmpty() {
		return nil, domain.ErrEmptyUpdate
	}

	if params.Title != nil {
		if err := ValidateTitle(*params.Title); err != nil {
			return nil, err
		}
	}
	if params.Status != nil {
		if err := ValidateStatus(*params.Status); err != nil {
			return nil, err
		}
	}
	if params.Priority != nil {
		if err := ValidatePriority(*params.Priority); err != nil {
			return nil, err
		}
	}

	task, err := s.taskRepo.Update(ctx, taskID, repository.TaskUpdate{
		Title:       params.Title,
		Description: params.Description,
		Status:      params.Status,
		Priority:    params.Priority,
		AgentID:     params.AgentID,
		CompletedAt: params.CompletedAt,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("task updated",
		"task_id", task.ID,
		"status", task.Status,
	)

	return task, nil
}

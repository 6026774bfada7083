package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/missionctl/missionctl/internal/domain"
)

// taskColumns is the shared list of columns for task queries.
var taskColumns = []string{
	"id", "title", "description", "status", "priority", "agent_id",
	"created_at", "updated_at", "completed_at",
}

// TaskRepository handles database operations for tasks.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// scanTask scans a single row into a Task struct.
func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.AgentID,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &task, nil
}

// scanTasks scans multiple rows into a slice of Task structs.
func scanTasks(rows pgx.Rows) ([]*domain.Task, error) {
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return tasks, nil
}

// TaskListFilters holds the supported filters for task listing. Status and
// AgentID are mutually exclusive; status takes precedence when both are set.
type TaskListFilters struct {
	Status  *domain.TaskStatus
	AgentID *string
}

// List retrieves tasks ordered by priority descending, newest-first within
// equal priority.
func (r *TaskRepository) List(ctx context.Context, filters TaskListFilters) ([]*domain.Task, error) {
	qb := psql.Select(taskColumns...).From("tasks")

	if filters.Status != nil {
		qb = qb.Where(sq.Eq{"status": *filters.Status})
	} else if filters.AgentID != nil {
		qb = qb.Where(sq.Eq{"agent_id": *filters.AgentID})
	}

	query, args, err := qb.
		OrderBy("priority DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	return scanTasks(rows)
}

// RecentlyUpdated retrieves the most recently updated tasks for the task
// stream snapshot.
func (r *TaskRepository) RecentlyUpdated(ctx context.Context, limit int) ([]*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		OrderBy("updated_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build RecentlyUpdated query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent tasks: %w", err)
	}

	return scanTasks(rows)
}

// GetByID retrieves a task by ID.
func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for task: %w", err)
	}

	return scanTask(r.pool.QueryRow(ctx, query, args...))
}

// Create persists a new task. The identifier is generated server-side; the
// store assigns both timestamps.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	task.ID = uuid.NewString()

	query, args, err := psql.
		Insert("tasks").
		Columns("id", "title", "description", "status", "priority", "agent_id").
		Values(task.ID, task.Title, task.Description, task.Status, task.Priority, task.AgentID).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for task: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

// TaskUpdate carries the fields of a partial update. Nil fields are left
// untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *int
	AgentID     *string
	CompletedAt *time.Time
}

// taskUpdateColumns is the compile-time set of columns a partial update may
// touch. Column names are never taken from caller input; values travel as
// bind parameters only.
var taskUpdateColumns = []struct {
	name  string
	value func(u TaskUpdate) (any, bool)
}{
	{"title", func(u TaskUpdate) (any, bool) {
		if u.Title == nil {
			return nil, false
		}
		return *u.Title, true
	}},
	{"description", func(u TaskUpdate) (any, bool) {
		if u.Description == nil {
			return nil, false
		}
		return *u.Description, true
	}},
	{"status", func(u TaskUpdate) (any, bool) {
		if u.Status == nil {
			return nil, false
		}
		return *u.Status, true
	}},
	{"priority", func(u TaskUpdate) (any, bool) {
		if u.Priority == nil {
			return nil, false
		}
		return *u.Priority, true
	}},
	{"agent_id", func(u TaskUpdate) (any, bool) {
		if u.AgentID == nil {
			return nil, false
		}
		return *u.AgentID, true
	}},
	{"completed_at", func(u TaskUpdate) (any, bool) {
		if u.CompletedAt == nil {
			return nil, false
		}
		return *u.CompletedAt, true
	}},
}

// Update applies a partial update in a single statement and returns the
// updated record. Transitioning into done without an explicit completed_at
// stamps it once; a value already present is kept. updated_at is always
// stamped. Returns ErrTaskNotFound when no row matches.
func (r *TaskRepository) Update(ctx context.Context, taskID string, upd TaskUpdate) (*domain.Task, error) {
	qb := psql.Update("tasks")

	changed := 0
	for _, col := range taskUpdateColumns {
		if v, ok := col.value(upd); ok {
			qb = qb.Set(col.name, v)
			changed++
		}
	}
	if changed == 0 {
		return nil, domain.ErrEmptyUpdate
	}

	if upd.Status != nil && *upd.Status == domain.TaskStatusDone && upd.CompletedAt == nil {
		qb = qb.Set("completed_at", sq.Expr("COALESCE(completed_at, NOW())"))
	}

	query, args, err := qb.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": taskID}).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Update query for task: %w", err)
	}

	return scanTask(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a task. Returns ErrTaskNotFound when no row was removed, so
// deleting twice fails the second time instead of succeeding silently.
func (r *TaskRepository) Delete(ctx context.Context, taskID string) error {
	query, args, err := psql.
		Delete("tasks").
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for task: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

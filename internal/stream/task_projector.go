package stream

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/missionctl/missionctl/internal/domain"
)

// DefaultTaskInterval is the poll cadence of the task stream.
const DefaultTaskInterval = 2 * time.Second

// taskSnapshotLimit bounds each snapshot to the most recently updated tasks.
const taskSnapshotLimit = 100

// TaskSource supplies the tasks a snapshot frame is built from.
type TaskSource interface {
	RecentlyUpdated(ctx context.Context, limit int) ([]*domain.Task, error)
}

// TaskSnapshotEntry is the per-task projection pushed on the task stream.
type TaskSnapshotEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Priority    int       `json:"priority"`
	AgentID     *string   `json:"agent_id"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskProjector pushes the full current board state on every tick rather
// than diffs. Snapshot replacement is idempotent and self-healing against
// missed ticks, at the cost of redundant bandwidth.
type TaskProjector struct {
	source   TaskSource
	interval time.Duration
}

// NewTaskProjector creates a projector for one stream connection.
func NewTaskProjector(source TaskSource, interval time.Duration) *TaskProjector {
	if interval <= 0 {
		interval = DefaultTaskInterval
	}
	return &TaskProjector{source: source, interval: interval}
}

// Run polls until ctx is cancelled, emitting one snapshot frame per tick.
// Cancellation is checked before every store access and every sleep and ends
// the loop with a nil error; any tick error ends it with that error so the
// connection tears down instead of retrying forever.
func (p *TaskProjector) Run(ctx context.Context, w io.Writer) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := p.tick(ctx, w); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(p.interval):
		}
	}
}

func (p *TaskProjector) tick(ctx context.Context, w io.Writer) error {
	tasks, err := p.source.RecentlyUpdated(ctx, taskSnapshotLimit)
	if err != nil {
		return fmt.Errorf("read task snapshot: %w", err)
	}

	snapshot := make([]TaskSnapshotEntry, len(tasks))
	for i, task := range tasks {
		snapshot[i] = TaskSnapshotEntry{
			ID:          task.ID,
			Title:       task.Title,
			Description: task.Description,
			Status:      string(task.Status),
			Priority:    task.Priority,
			AgentID:     task.AgentID,
			UpdatedAt:   task.UpdatedAt,
		}
	}

	return WriteFrame(w, "update", snapshot)
}

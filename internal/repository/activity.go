package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/missionctl/missionctl/internal/domain"
)

var activityColumns = []string{
	"id", "seq", "event_type", "source", "data", "created_at",
}

// ActivityRepository handles database operations for activity events. The
// log is append-only: no update or delete exists at any layer.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func scanActivityEvents(rows pgx.Rows) ([]*domain.ActivityEvent, error) {
	defer rows.Close()

	var events []*domain.ActivityEvent
	for rows.Next() {
		var event domain.ActivityEvent
		err := rows.Scan(
			&event.ID,
			&event.Seq,
			&event.EventType,
			&event.Source,
			&event.Data,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return events, nil
}

// Append inserts a new activity event. The identifier is generated
// server-side; the store assigns seq and created_at.
func (r *ActivityRepository) Append(ctx context.Context, event *domain.ActivityEvent) error {
	event.ID = uuid.NewString()

	query, args, err := psql.
		Insert("activity_events").
		Columns("id", "event_type", "source", "data").
		Values(event.ID, event.EventType, event.Source, event.Data).
		Suffix("RETURNING seq, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Append query for activity event: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&event.Seq, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("append activity event: %w", err)
	}

	return nil
}

// List retrieves the most recent events newest-first, optionally filtered by
// exact event_type match.
func (r *ActivityRepository) List(ctx context.Context, limit int, eventType *string) ([]*domain.ActivityEvent, error) {
	qb := psql.Select(activityColumns...).From("activity_events")

	if eventType != nil {
		qb = qb.Where(sq.Eq{"event_type": *eventType})
	}

	query, args, err := qb.
		OrderBy("seq DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for activity events: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}

	return scanActivityEvents(rows)
}

// Latest retrieves the most recent events newest-first for stream priming.
func (r *ActivityRepository) Latest(ctx context.Context, limit int) ([]*domain.ActivityEvent, error) {
	return r.List(ctx, limit, nil)
}

// After retrieves all events with a sequence number strictly greater than
// the given cursor, in chronological order.
func (r *ActivityRepository) After(ctx context.Context, seq int64) ([]*domain.ActivityEvent, error) {
	query, args, err := psql.
		Select(activityColumns...).
		From("activity_events").
		Where(sq.Gt{"seq": seq}).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build After query for activity events: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activity events after %d: %w", seq, err)
	}

	return scanActivityEvents(rows)
}

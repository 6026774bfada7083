package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/missionctl/missionctl/internal/domain"
)

// DefaultActivityInterval is the poll cadence of the activity stream.
const DefaultActivityInterval = time.Second

// activityBacklogLimit bounds the backlog emitted on the first tick.
const activityBacklogLimit = 100

// ActivitySource supplies activity events for delta emission. Latest returns
// the most recent events newest-first; After returns events with a sequence
// number strictly greater than the cursor, oldest-first.
type ActivitySource interface {
	Latest(ctx context.Context, limit int) ([]*domain.ActivityEvent, error)
	After(ctx context.Context, seq int64) ([]*domain.ActivityEvent, error)
}

// ActivityFrame is the payload of one activity frame.
type ActivityFrame struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	Source    *string         `json:"source"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}

// ActivityProjector emits activity deltas with a watermark: the sequence
// number of the newest event already sent. The watermark is a store-assigned
// monotonic cursor, not a wall-clock timestamp, so events sharing a
// timestamp are neither dropped nor duplicated.
type ActivityProjector struct {
	source    ActivitySource
	interval  time.Duration
	watermark int64
	primed    bool
}

// NewActivityProjector creates a projector for one stream connection.
func NewActivityProjector(source ActivitySource, interval time.Duration) *ActivityProjector {
	if interval <= 0 {
		interval = DefaultActivityInterval
	}
	return &ActivityProjector{source: source, interval: interval}
}

// Run polls until ctx is cancelled. The first tick emits the recent backlog
// in chronological order and seeds the watermark; subsequent ticks emit only
// events past the watermark. Errors end the loop so the connection tears
// down instead of retrying forever.
func (p *ActivityProjector) Run(ctx context.Context, w io.Writer) error {
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

func (p *ActivityProjector) tick(ctx context.Context, w io.Writer) error {
	events, err := p.next(ctx)
	if err != nil {
		return err
	}

	for _, event := range events {
		frame := ActivityFrame{
			ID:        event.ID,
			EventType: event.EventType,
			Source:    event.Source,
			Data:      event.Data,
			CreatedAt: event.CreatedAt,
		}
		if err := WriteFrame(w, "activity", frame); err != nil {
			return err
		}
		if event.Seq > p.watermark {
			p.watermark = event.Seq
		}
	}

	return nil
}

// next fetches the events due on this tick, oldest-first.
func (p *ActivityProjector) next(ctx context.Context) ([]*domain.ActivityEvent, error) {
	if !p.primed {
		events, err := p.source.Latest(ctx, activityBacklogLimit)
		if err != nil {
			return nil, fmt.Errorf("read activity backlog: %w", err)
		}
		p.primed = true
		slices.Reverse(events)
		return events, nil
	}

	events, err := p.source.After(ctx, p.watermark)
	if err != nil {
		return nil, fmt.Errorf("read activity after %d: %w", p.watermark, err)
	}
	return events, nil
}

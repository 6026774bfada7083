package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/missionctl/missionctl/internal/domain"
	"github.com/stretchr/testify/require"
)

type fakeTaskSource struct {
	tasks []*domain.Task
	err   error
}

func (f *fakeTaskSource) RecentlyUpdated(_ context.Context, limit int) ([]*domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.tasks) > limit {
		return f.tasks[:limit], nil
	}
	return f.tasks, nil
}

// fakeActivitySource holds events in ascending seq order, like the store.
type fakeActivitySource struct {
	events []*domain.ActivityEvent
	err    error
}

func (f *fakeActivitySource) Latest(_ context.Context, limit int) ([]*domain.ActivityEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	start := 0
	if len(f.events) > limit {
		start = len(f.events) - limit
	}
	recent := f.events[start:]
	out := make([]*domain.ActivityEvent, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		out = append(out, recent[i])
	}
	return out, nil
}

func (f *fakeActivitySource) After(_ context.Context, seq int64) ([]*domain.ActivityEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.ActivityEvent
	for _, e := range f.events {
		if e.Seq > seq {
			out = append(out, e)
		}
	}
	return out, nil
}

func activityEvent(seq int64, eventType string) *domain.ActivityEvent {
	return &domain.ActivityEvent{
		ID:        fmt.Sprintf("00000000-0000-0000-0000-%012d", seq),
		Seq:       seq,
		EventType: eventType,
		CreatedAt: time.Unix(seq, 0).UTC(),
	}
}

type frame struct {
	event string
	data  string
}

func parseFrames(t *testing.T, raw string) []frame {
	t.Helper()

	var frames []frame
	for _, block := range strings.Split(raw, "\n\n") {
		if block == "" {
			continue
		}
		lines := strings.SplitN(block, "\n", 2)
		require.Len(t, lines, 2, "frame missing data line: %q", block)
		require.True(t, strings.HasPrefix(lines[0], "event: "), "bad event line: %q", lines[0])
		require.True(t, strings.HasPrefix(lines[1], "data: "), "bad data line: %q", lines[1])
		frames = append(frames, frame{
			event: strings.TrimPrefix(lines[0], "event: "),
			data:  strings.TrimPrefix(lines[1], "data: "),
		})
	}
	return frames
}

func TestWriteFrameFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, "update", []string{"a"}))
	require.Equal(t, "event: update\ndata: [\"a\"]\n\n", buf.String())
}

func TestTaskProjectorSnapshotFrame(t *testing.T) {
	agent := "agent-1"
	source := &fakeTaskSource{tasks: []*domain.Task{
		{ID: "11111111-1111-1111-1111-111111111111", Title: "Newer", Status: domain.TaskStatusTodo, Priority: 3, AgentID: &agent},
		{ID: "22222222-2222-2222-2222-222222222222", Title: "Older", Status: domain.TaskStatusDone, Priority: 1},
	}}
	p := NewTaskProjector(source, time.Second)

	var buf bytes.Buffer
	require.NoError(t, p.tick(context.Background(), &buf))

	frames := parseFrames(t, buf.String())
	require.Len(t, frames, 1)
	require.Equal(t, "update", frames[0].event)

	var snapshot []TaskSnapshotEntry
	require.NoError(t, json.Unmarshal([]byte(frames[0].data), &snapshot))
	require.Len(t, snapshot, 2)
	require.Equal(t, "Newer", snapshot[0].Title)
	require.Equal(t, &agent, snapshot[0].AgentID)
	require.Equal(t, "done", snapshot[1].Status)
}

func TestTaskProjectorSnapshotIsFullEachTick(t *testing.T) {
	source := &fakeTaskSource{tasks: []*domain.Task{
		{ID: "11111111-1111-1111-1111-111111111111", Title: "Only", Status: domain.TaskStatusBacklog},
	}}
	p := NewTaskProjector(source, time.Second)

	var buf bytes.Buffer
	require.NoError(t, p.tick(context.Background(), &buf))
	require.NoError(t, p.tick(context.Background(), &buf))

	// Snapshot replacement: every tick carries the whole state again.
	frames := parseFrames(t, buf.String())
	require.Len(t, frames, 2)
	require.Equal(t, frames[0].data, frames[1].data)
}

func TestActivityProjectorBacklogOldestFirst(t *testing.T) {
	source := &fakeActivitySource{events: []*domain.ActivityEvent{
		activityEvent(1, "task_created"),
		activityEvent(2, "task_updated"),
		activityEvent(3, "task_done"),
	}}
	p := NewActivityProjector(source, time.Second)

	var buf bytes.Buffer
	require.NoError(t, p.tick(context.Background(), &buf))

	frames := parseFrames(t, buf.String())
	require.Len(t, frames, 3)

	var types []string
	for _, f := range frames {
		require.Equal(t, "activity", f.event)
		var payload ActivityFrame
		require.NoError(t, json.Unmarshal([]byte(f.data), &payload))
		types = append(types, payload.EventType)
	}
	require.Equal(t, []string{"task_created", "task_updated", "task_done"}, types)
	require.Equal(t, int64(3), p.watermark)
}

func TestActivityProjectorDeltaEmittedExactlyOnce(t *testing.T) {
	source := &fakeActivitySource{events: []*domain.ActivityEvent{
		activityEvent(1, "task_created"),
		activityEvent(2, "task_updated"),
		activityEvent(3, "task_done"),
	}}
	p := NewActivityProjector(source, time.Second)

	var buf bytes.Buffer
	require.NoError(t, p.tick(context.Background(), &buf))
	buf.Reset()

	source.events = append(source.events, activityEvent(4, "task_deleted"))
	require.NoError(t, p.tick(context.Background(), &buf))

	frames := parseFrames(t, buf.String())
	require.Len(t, frames, 1)
	var payload ActivityFrame
	require.NoError(t, json.Unmarshal([]byte(frames[0].data), &payload))
	require.Equal(t, "task_deleted", payload.EventType)
	require.Equal(t, int64(4), p.watermark)

	// No later frame repeats it.
	buf.Reset()
	require.NoError(t, p.tick(context.Background(), &buf))
	require.Empty(t, parseFrames(t, buf.String()))
}

func TestActivityProjectorEmptyBacklog(t *testing.T) {
	source := &fakeActivitySource{}
	p := NewActivityProjector(source, time.Second)

	var buf bytes.Buffer
	require.NoError(t, p.tick(context.Background(), &buf))
	require.Empty(t, parseFrames(t, buf.String()))

	// Events appearing after an empty first tick still flow as deltas.
	source.events = append(source.events, activityEvent(1, "task_created"))
	require.NoError(t, p.tick(context.Background(), &buf))
	frames := parseFrames(t, buf.String())
	require.Len(t, frames, 1)
	require.Equal(t, int64(1), p.watermark)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	p := NewTaskProjector(&fakeTaskSource{}, time.Second)
	require.NoError(t, p.Run(ctx, &buf))
	require.Empty(t, buf.String())
}

func TestRunEmitsUntilDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	p := NewTaskProjector(&fakeTaskSource{}, 10*time.Millisecond)
	require.NoError(t, p.Run(ctx, &buf))

	frames := parseFrames(t, buf.String())
	require.NotEmpty(t, frames)
	require.Equal(t, "update", frames[0].event)
}

func TestRunReturnsSourceError(t *testing.T) {
	wantErr := errors.New("connection refused")

	var buf bytes.Buffer
	tp := NewTaskProjector(&fakeTaskSource{err: wantErr}, time.Second)
	require.ErrorIs(t, tp.Run(context.Background(), &buf), wantErr)

	ap := NewActivityProjector(&fakeActivitySource{err: wantErr}, time.Second)
	require.ErrorIs(t, ap.Run(context.Background(), &buf), wantErr)
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/missionctl/missionctl/internal/stream"
)

// setStreamHeaders prepares a response for server-sent events: caching and
// proxy buffering are disabled so frames reach the client immediately.
func setStreamHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
}

// handleTaskStream pushes full board snapshots until the client disconnects.
// One projector instance is created per connection; the request context
// carries the disconnect signal into the poll loop.
func (h *Handler) handleTaskStream(w http.ResponseWriter, r *http.Request) {
	setStreamHeaders(w)

	projector := stream.NewTaskProjector(h.taskRepo, stream.DefaultTaskInterval)
	if err := projector.Run(r.Context(), w); err != nil {
		slog.Error("task stream terminated", "error", err)
	}
}

// handleActivityStream pushes activity deltas until the client disconnects.
func (h *Handler) handleActivityStream(w http.ResponseWriter, r *http.Request) {
	setStreamHeaders(w)

	projector := stream.NewActivityProjector(h.activityRepo, stream.DefaultActivityInterval)
	if err := projector.Run(r.Context(), w); err != nil {
		slog.Error("activity stream terminated", "error", err)
	}
}

// Package stream implements the live update streams: long-lived per-connection
// projector loops that poll the store on a fixed interval and push
// server-sent-event frames until the connection's context is cancelled.
package stream

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// WriteFrame writes one named SSE frame: an event line, a JSON data line and
// a blank terminator, flushed immediately when the writer supports it.
func WriteFrame(w io.Writer, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s frame: %w", event, err)
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return fmt.Errorf("write %s frame: %w", event, err)
	}

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	return nil
}

package domain

import (
	"encoding/json"
	"time"
)

// ActivityEvent is an append-only log entry. Data is an opaque JSON payload
// stored and returned verbatim. Seq is a monotonically increasing cursor
// assigned by the store; streaming consumers use it as their watermark.
type ActivityEvent struct {
	ID        string
	Seq       int64
	EventType string
	Source    *string
	Data      json.RawMessage
	CreatedAt time.Time
}

package domain

import (
	"encoding/json"
	"time"
)

// AgentProfile describes an agent registered with the board. The agent_id is
// externally assigned and acts as the primary key. Config is an opaque JSON
// payload. Profiles are read-only from this service's perspective.
type AgentProfile struct {
	AgentID     string
	Name        string
	Description *string
	Config      json.RawMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

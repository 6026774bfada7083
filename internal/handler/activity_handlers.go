package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/missionctl/missionctl/internal/domain"
	"github.com/missionctl/missionctl/internal/handler/dto"
)

// Activity list limit bounds.
const (
	defaultActivityLimit = 100
	maxActivityLimit     = 1000
)

// handleListActivity returns the most recent activity events newest-first,
// optionally filtered by exact event_type match.
func (h *Handler) handleListActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	limit := defaultActivityLimit
	if limitParam := query.Get("limit"); limitParam != "" {
		if n, err := strconv.Atoi(limitParam); err == nil && n >= 1 && n <= maxActivityLimit {
			limit = n
		}
	}

	var eventType *string
	if typeParam := query.Get("event_type"); typeParam != "" {
		eventType = &typeParam
	}

	events, err := h.activityRepo.List(ctx, limit, eventType)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToActivityEventResponses(events))
}

// handleAppendActivity appends one event to the log. The data payload is
// stored opaquely and returned verbatim on reads.
func (h *Handler) handleAppendActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.AppendActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.EventType == "" {
		status, code, message := dto.MapDomainError(domain.ErrEmptyEventType)
		respondError(w, status, code, message)
		return
	}

	event := &domain.ActivityEvent{
		EventType: req.EventType,
		Source:    req.Source,
		Data:      req.Data,
	}
	if err := h.activityRepo.Append(ctx, event); err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusCreated, dto.AppendActivityResponse{Success: true, ID: event.ID})
}

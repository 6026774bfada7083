package handler

import (
	"net/http"

	"github.com/missionctl/missionctl/internal/handler/dto"
)

// handleListProfiles returns all agent profiles ordered by name.
func (h *Handler) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileRepo.List(r.Context())
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToAgentProfileResponses(profiles))
}

// handleGetProfile retrieves one agent profile. The agent_id is an
// externally assigned string, not a UUID, so no format check applies.
func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	agentID := r.PathValue("id")

	profile, err := h.profileRepo.GetByID(r.Context(), agentID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToAgentProfileResponse(profile))
}

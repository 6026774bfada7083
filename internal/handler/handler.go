package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/missionctl/missionctl/internal/config"
	"github.com/missionctl/missionctl/internal/handler/dto"
	"github.com/missionctl/missionctl/internal/middleware"
	"github.com/missionctl/missionctl/internal/repository"
	"github.com/missionctl/missionctl/internal/service"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool         *pgxpool.Pool
	instanceID   string
	taskService  *service.TaskService
	taskRepo     *repository.TaskRepository
	activityRepo *repository.ActivityRepository
	profileRepo  *repository.AgentProfileRepository
	auth         *middleware.AuthMiddleware
}

// New creates a new Handler instance with all dependencies.
func New(pool *pgxpool.Pool, cfg *config.Config) *Handler {
	taskRepo := repository.NewTaskRepository(pool)

	return &Handler{
		pool:         pool,
		instanceID:   cfg.InstanceID,
		taskService:  service.NewTaskService(taskRepo),
		taskRepo:     taskRepo,
		activityRepo: repository.NewActivityRepository(pool),
		profileRepo:  repository.NewAgentProfileRepository(pool),
		auth:         middleware.NewAuthMiddleware(cfg.Token),
	}
}

// RegisterRoutes registers all HTTP routes. Every route except the health
// check is gated by the bearer token middleware.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handleHealth)

	gated := func(fn http.HandlerFunc) http.Handler {
		return h.auth.Authenticate(fn)
	}

	mux.Handle("GET /kanban", gated(h.handleListTasks))
	mux.Handle("POST /kanban/tasks", gated(h.handleCreateTask))
	mux.Handle("GET /kanban/tasks/{id}", gated(h.handleGetTask))
	mux.Handle("PUT /kanban/tasks/{id}", gated(h.handleUpdateTask))
	mux.Handle("DELETE /kanban/tasks/{id}", gated(h.handleDeleteTask))
	mux.Handle("GET /kanban/stream", gated(h.handleTaskStream))

	mux.Handle("GET /activity", gated(h.handleListActivity))
	mux.Handle("POST /activity", gated(h.handleAppendActivity))
	mux.Handle("GET /activity/stream", gated(h.handleActivityStream))

	mux.Handle("GET /agent-profiles", gated(h.handleListProfiles))
	mux.Handle("GET /agent-profiles/{id}", gated(h.handleGetProfile))
}

// handleHealth reports store reachability along with the instance id.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := dto.HealthResponse{
		Status:     "healthy",
		Database:   "connected",
		InstanceID: h.instanceID,
	}
	status := http.StatusOK

	if err := h.pool.Ping(r.Context()); err != nil {
		slog.Error("database health check failed", "error", err)
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		status = http.StatusServiceUnavailable
	}

	respondJSON(w, status, resp)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// extractTaskID extracts and validates the task ID path parameter.
// A malformed identifier is rejected here, before any store access, so it
// surfaces as a client error rather than NotFound.
// Returns (taskID, true) if valid, ("", false) if invalid (error already sent).
func extractTaskID(w http.ResponseWriter, r *http.Request) (string, bool) {
	taskID := r.PathValue("id")
	if taskID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "task id is required")
		return "", false
	}

	if _, err := uuid.Parse(taskID); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "task id must be a valid UUID")
		return "", false
	}

	return taskID, true
}

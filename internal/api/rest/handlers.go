package rest

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/roguetex/courtside/internal/registry"
	"github.com/roguetex/courtside/internal/schedule"
	"github.com/roguetex/courtside/internal/store"
)

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	reg        *registry.Registry
	db         *store.Database
	reportPath string
}

// NewHandler creates a new handler.
func NewHandler(reg *registry.Registry, db *store.Database, reportPath string) *Handler {
	return &Handler{reg: reg, db: db, reportPath: reportPath}
}

// HealthCheck reports service and database health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":  "healthy",
		"service": "courtside",
	}
	if h.db != nil {
		if err := h.db.HealthCheck(); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
		} else {
			status["database"] = "ok"
		}
	}
	respondJSON(w, http.StatusOK, status)
}

// GetTeams returns the venue registry: every tracked team with its
// arena, conference, and coordinates.
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"teams": h.reg.Venues()})
}

// GetVenueEvents returns stored canonical events whose venue matches
// the ?venue= query by case-insensitive containment.
func (h *Handler) GetVenueEvents(w http.ResponseWriter, r *http.Request) {
	venue := r.URL.Query().Get("venue")
	if venue == "" {
		respondError(w, http.StatusBadRequest, "missing venue query parameter", nil)
		return
	}
	if h.db == nil {
		respondError(w, http.StatusServiceUnavailable, "event store not configured", nil)
		return
	}

	events, err := h.db.EventsByVenue(r.Context(), venue)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch events", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"events": events})
}

// scheduleRequest is the POST /schedule body.
type scheduleRequest struct {
	EastTeams           []string `json:"east_teams"`
	WestTeams           []string `json:"west_teams"`
	MinDaysBetweenGames int      `json:"min_days_between_games"`
	StartDate           string   `json:"start_date,omitempty"`
}

// GenerateSchedule simulates a playoff bracket for the requested seed
// orders, avoiding dates each arena is already booked.
func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if len(req.EastTeams) == 0 || len(req.WestTeams) == 0 {
		respondError(w, http.StatusBadRequest, "east_teams and west_teams are required", nil)
		return
	}
	if req.MinDaysBetweenGames == 0 {
		req.MinDaysBetweenGames = 1
	}

	start := time.Now().UTC()
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid start_date (use YYYY-MM-DD)", err)
			return
		}
		start = parsed
	}

	busy := make(map[string][]string)
	if h.db != nil {
		for _, team := range append(append([]string(nil), req.EastTeams...), req.WestTeams...) {
			dates, err := h.db.BusyDates(r.Context(), team)
			if err != nil {
				respondError(w, http.StatusInternalServerError, "failed to load busy dates", err)
				return
			}
			busy[team] = dates
		}
	}

	result := schedule.Generate(req.EastTeams, req.WestTeams, busy, req.MinDaysBetweenGames, start)
	respondJSON(w, http.StatusOK, result)
}

// GetValidationReport serves the most recent validation report text.
func (h *Handler) GetValidationReport(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(h.reportPath)
	if os.IsNotExist(err) {
		respondError(w, http.StatusNotFound, "no validation report available", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read validation report", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]any{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

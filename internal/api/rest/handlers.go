package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jonkorsgard/nfl-playoff-tracker/internal/matchup"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/report"
	"github.com/jonkorsgard/nfl-playoff-tracker/internal/service"
)

const maxTopLimit = 50

// Tracker is what the handlers need from the matchup service.
type Tracker interface {
	Latest() (*service.Snapshot, error)
	Refresh(ctx context.Context) (*service.Snapshot, error)
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	tracker Tracker
	version string
	log     *logrus.Entry
}

// NewHandler creates a new handler
func NewHandler(tracker Tracker, version string, log *logrus.Entry) *Handler {
	return &Handler{tracker: tracker, version: version, log: log}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status":  "healthy",
		"service": "nfl-playoff-tracker",
		"version": h.version,
		"ready":   false,
	}
	if snap, err := h.tracker.Latest(); err == nil {
		resp["ready"] = true
		resp["run_id"] = snap.RunID
		resp["generated_at"] = snap.Document.GeneratedAt
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetMatchup returns the latest matchup document
func (h *Handler) GetMatchup(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.latest(w)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, snap.Document)
}

// GetTopPerformers returns the top scoring rostered players
func (h *Handler) GetTopPerformers(w http.ResponseWriter, r *http.Request) {
	limit := matchup.DefaultTopN
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 || l > maxTopLimit {
			respondError(w, http.StatusBadRequest, "limit must be between 1 and 50", err)
			return
		}
		limit = l
	}

	snap, ok := h.latest(w)
	if !ok {
		return
	}

	rows := matchup.PerformerRows(matchup.Rank(snap.Result.Entries(), limit))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"top_performers": rows,
		"count":          len(rows),
	})
}

// GetTeam returns one fantasy team's roster breakdown
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	n, _ := strconv.Atoi(mux.Vars(r)["team"])

	snap, ok := h.latest(w)
	if !ok {
		return
	}

	switch n {
	case 1:
		respondJSON(w, http.StatusOK, snap.Document.Team1)
	case 2:
		respondJSON(w, http.StatusOK, snap.Document.Team2)
	default:
		respondError(w, http.StatusNotFound, "Team not found (use 1 or 2)", nil)
	}
}

// RefreshMatchup re-runs the pipeline and returns the new document
func (h *Handler) RefreshMatchup(w http.ResponseWriter, r *http.Request) {
	snap, err := h.tracker.Refresh(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to refresh matchup", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"run_id":      snap.RunID,
		"ingest":      snap.Ingest,
		"duration_ms": snap.Duration.Milliseconds(),
		"matchup":     snap.Document,
	})
}

// StandingsPage renders the latest matchup as HTML
func (h *Handler) StandingsPage(w http.ResponseWriter, r *http.Request) {
	snap, err := h.tracker.Latest()
	if err != nil {
		http.Error(w, "Standings are not available yet", http.StatusServiceUnavailable)
		return
	}

	var buf bytes.Buffer
	if err := report.WritePage(&buf, snap.Document); err != nil {
		h.log.WithError(err).Error("render standings")
		http.Error(w, "Failed to render standings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) latest(w http.ResponseWriter) (*service.Snapshot, bool) {
	snap, err := h.tracker.Latest()
	if errors.Is(err, service.ErrNotReady) {
		respondError(w, http.StatusServiceUnavailable, "Matchup not computed yet", err)
		return nil, false
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load matchup", err)
		return nil, false
	}
	return snap, true
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	respondJSON(w, status, response)
}

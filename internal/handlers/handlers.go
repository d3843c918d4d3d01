package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/mtlusa01/mattev-sports/internal/registry"
	"github.com/mtlusa01/mattev-sports/internal/store"
	"github.com/mtlusa01/mattev-sports/pkg/contracts"
)

// Handler serves the grading documents over HTTP, read-only
type Handler struct {
	store    *store.Store
	registry *registry.Registry
}

// NewHandler creates a new handler with dependencies
func NewHandler(st *store.Store, reg *registry.Registry) *Handler {
	return &Handler{
		store:    st,
		registry: reg,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "results-api",
	})
}

// GetSports lists the registered sports
func (h *Handler) GetSports(w http.ResponseWriter, r *http.Request) {
	type sportInfo struct {
		Key         string `json:"key"`
		DisplayName string `json:"display_name"`
		Enabled     bool   `json:"enabled"`
	}

	var sports []sportInfo
	for _, key := range h.registry.AllSportKeys() {
		sport, err := h.registry.GetSport(key)
		if err != nil {
			continue
		}
		sports = append(sports, sportInfo{
			Key:         sport.Key(),
			DisplayName: sport.DisplayName(),
			Enabled:     sport.IsEnabled(),
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sports": sports,
		"count":  len(sports),
	})
}

// GetProjections returns a sport's current projection document
func (h *Handler) GetProjections(w http.ResponseWriter, r *http.Request) {
	sport, ok := h.lookupSport(w, r)
	if !ok {
		return
	}

	proj, err := h.store.LoadProjections(sport.ProjectionFile())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load projections", err)
		return
	}
	if proj == nil {
		respondError(w, http.StatusNotFound, "no projections for sport", nil)
		return
	}

	respondJSON(w, http.StatusOK, proj)
}

// GetResults returns a sport's full results document
func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	sport, ok := h.lookupSport(w, r)
	if !ok {
		return
	}

	results, err := h.store.LoadResults(sport.ResultsFile())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load results", err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// GetRecord returns just a sport's all-time record
func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	sport, ok := h.lookupSport(w, r)
	if !ok {
		return
	}

	results, err := h.store.LoadResults(sport.ResultsFile())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load results", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sport":   sport.Key(),
		"updated": results.Updated,
		"allTime": results.AllTime,
		"days":    len(results.Days),
	})
}

func (h *Handler) lookupSport(w http.ResponseWriter, r *http.Request) (contracts.Sport, bool) {
	key := chi.URLParam(r, "sport")
	sport, err := h.registry.GetSport(key)
	if err != nil {
		respondError(w, http.StatusNotFound, "unknown sport", err)
		return nil, false
	}
	return sport, true
}

// respondJSON writes a JSON response with the given status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Warn("Failed to encode response")
	}
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		logrus.WithError(err).Warn(message)
	}
	respondJSON(w, status, map[string]string{"error": message})
}

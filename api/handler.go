package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mergington-activities/metrics"
	"mergington-activities/registry"

	"github.com/rs/zerolog/log"
)

// Handler serves the activities API. The registry is injected so tests can
// run against their own seeded state.
type Handler struct {
	reg *registry.Registry
}

func NewHandler(reg *registry.Registry) *Handler {
	return &Handler{reg: reg}
}

// RegisterRoutes attaches the API routes to the provided mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET /activities", h.handleList)
	mux.HandleFunc("POST /activities/{name}/signup", h.handleSignup)
	mux.HandleFunc("DELETE /activities/{name}/participants/{email}", h.handleWithdraw)
}

// handleRoot redirects the bare root to the static front-end.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	writeJSON(w, http.StatusOK, h.reg.Snapshot())
	metrics.RequestDuration.Observe(time.Since(start).Seconds())
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")

	if email == "" {
		log.Warn().Str("activity", name).Msg("signup without email")
		metrics.SignupsTotal.WithLabelValues("bad_request").Inc()
		writeDetail(w, http.StatusBadRequest, "Email is required")
		return
	}

	err := h.reg.SignUp(name, email)
	duration := time.Since(start)
	metrics.RequestDuration.Observe(duration.Seconds())

	switch {
	case err == nil:
		metrics.SignupsTotal.WithLabelValues("success").Inc()
		log.Info().Str("activity", name).Str("email", email).Dur("duration", duration).Msg("signup successful")
		writeMessage(w, fmt.Sprintf("Signed up %s for %s", email, name))
	case errors.Is(err, registry.ErrActivityNotFound):
		metrics.SignupsTotal.WithLabelValues("not_found").Inc()
		log.Warn().Str("activity", name).Msg("signup for unknown activity")
		writeDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, registry.ErrDuplicateSignup):
		metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		log.Warn().Str("activity", name).Str("email", email).Msg("duplicate signup")
		writeDetail(w, http.StatusBadRequest, "Student already signed up for this activity")
	case errors.Is(err, registry.ErrActivityFull):
		metrics.SignupsTotal.WithLabelValues("full").Inc()
		log.Warn().Str("activity", name).Str("email", email).Msg("signup for full activity")
		writeDetail(w, http.StatusBadRequest, "Activity is full")
	default:
		log.Error().Err(err).Str("activity", name).Str("email", email).Msg("signup failed")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := r.PathValue("name")
	email := r.PathValue("email")

	err := h.reg.Withdraw(name, email)
	duration := time.Since(start)
	metrics.RequestDuration.Observe(duration.Seconds())

	switch {
	case err == nil:
		metrics.WithdrawalsTotal.WithLabelValues("success").Inc()
		log.Info().Str("activity", name).Str("email", email).Dur("duration", duration).Msg("withdrawal successful")
		writeMessage(w, fmt.Sprintf("Removed %s from %s", email, name))
	case errors.Is(err, registry.ErrActivityNotFound):
		metrics.WithdrawalsTotal.WithLabelValues("not_found").Inc()
		log.Warn().Str("activity", name).Msg("withdrawal from unknown activity")
		writeDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, registry.ErrParticipantNotFound):
		metrics.WithdrawalsTotal.WithLabelValues("not_found").Inc()
		log.Warn().Str("activity", name).Str("email", email).Msg("withdrawal for unknown participant")
		writeDetail(w, http.StatusNotFound, "Participant not found in this activity")
	default:
		log.Error().Err(err).Str("activity", name).Str("email", email).Msg("withdrawal failed")
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response body")
	}
}

func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

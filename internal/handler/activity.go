package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mergington/activities-api/internal/domain"
	"github.com/mergington/activities-api/internal/metrics"
)

// ListActivities handles GET /activities.
// The response maps each activity name to its description, schedule,
// capacity, and participant roster in signup order.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.activities.GetActivities(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list activities failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// Signup handles POST /activities/{activityName}/signup?email=.
func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	name := activityNameParam(r)
	email := r.URL.Query().Get("email")

	err := s.activities.Signup(r.Context(), name, email)
	switch {
	case err == nil:
		s.recordSignup(metrics.ResultOK)
		writeJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Signed up %s for %s", email, name),
		})
	case errors.Is(err, domain.ErrNotFound):
		s.recordSignup(metrics.ResultNotFound)
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
	case errors.Is(err, domain.ErrConflict):
		s.recordSignup(metrics.ResultConflict)
		writeError(w, http.StatusBadRequest, "conflict", "Student is already signed up")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", validationMessage(err))
	default:
		s.recordSignup(metrics.ResultError)
		slog.ErrorContext(r.Context(), "signup failed", "activity", name, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// Unregister handles DELETE /activities/{activityName}/unregister?email=.
func (s *Server) Unregister(w http.ResponseWriter, r *http.Request) {
	name := activityNameParam(r)
	email := r.URL.Query().Get("email")

	err := s.activities.Unregister(r.Context(), name, email)
	switch {
	case err == nil:
		s.recordUnregister(metrics.ResultOK)
		writeJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Unregistered %s from %s", email, name),
		})
	case errors.Is(err, domain.ErrNotFound):
		s.recordUnregister(metrics.ResultNotFound)
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
	case errors.Is(err, domain.ErrConflict):
		s.recordUnregister(metrics.ResultConflict)
		writeError(w, http.StatusBadRequest, "conflict", "Student is not signed up for this activity")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", validationMessage(err))
	default:
		s.recordUnregister(metrics.ResultError)
		slog.ErrorContext(r.Context(), "unregister failed", "activity", name, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// activityNameParam returns the {activityName} URL parameter with percent
// escapes decoded, so "Chess%20Club" and "Chess Club" address the same row.
func activityNameParam(r *http.Request) string {
	name := chi.URLParam(r, "activityName")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

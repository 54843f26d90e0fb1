package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"habitd/internal/clock"
	"habitd/internal/logger"
	"habitd/internal/tracker"
	"habitd/pkg/versioninfo"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// writeError maps tracker and clock errors to status codes: rejected input
// is the caller's fault, everything else is ours.
func writeError(w http.ResponseWriter, err error) {
	var vErr *tracker.ValidationError
	var dErr *clock.InvalidDateError
	switch {
	case errors.As(err, &vErr):
		http.Error(w, fmt.Sprintf(`{"error":%q}`, vErr.Reason), http.StatusBadRequest)
	case errors.As(err, &dErr):
		http.Error(w, fmt.Sprintf(`{"error":%q}`, dErr.Error()), http.StatusBadRequest)
	default:
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
	}
}

func (s *Server) createHabit(w http.ResponseWriter, r *http.Request) {
	var req CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid JSON in create habit request", "error", err)
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	h, err := s.tracker.CreateHabit(req.Title, req.WeekDays)
	if err != nil {
		logger.Warn("Failed to create habit", "title", req.Title, "error", err)
		writeError(w, err)
		return
	}
	logger.Info("Habit created", "habit_id", h.ID, "title", h.Title, "week_days", h.WeekDays)
	habitsCreated.Inc()

	habits, err := s.tracker.ListHabits()
	if err != nil {
		logger.Warn("Failed to update tracked habits metric after create", "error", err)
	} else {
		habitsTracked.Set(float64(len(habits)))
	}

	if err := writeJSON(w, http.StatusCreated, h); err != nil {
		logger.Error("Failed to serialize create habit response", "habit_id", h.ID, "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) listHabits(w http.ResponseWriter, _ *http.Request) {
	habits, err := s.tracker.ListHabits()
	if err != nil {
		logger.Error("Failed to list habits", "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, HabitListResponse{Habits: habits}); err != nil {
		logger.Error("Failed to serialize habit list response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getDay(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		logger.Warn("Missing date parameter for day query")
		http.Error(w, `{"error":"date is required"}`, http.StatusBadRequest)
		return
	}
	day, err := clock.Parse(raw)
	if err != nil {
		logger.Warn("Unparseable date in day query", "date", raw)
		writeError(w, err)
		return
	}

	summary, err := s.tracker.DaySummary(day)
	if err != nil {
		logger.Error("Failed to build day summary", "date", day, "error", err)
		writeError(w, err)
		return
	}
	logger.Debug("Day summary served", "date", day,
		"possible", len(summary.PossibleHabits), "completed", len(summary.CompletedHabits))

	if err := writeJSON(w, http.StatusOK, summary); err != nil {
		logger.Error("Failed to serialize day summary response", "date", day, "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) toggleHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	if _, err := uuid.Parse(habitID); err != nil {
		logger.Warn("Malformed habit id in toggle request", "habit_id", habitID)
		http.Error(w, `{"error":"habit id must be a valid UUID"}`, http.StatusBadRequest)
		return
	}

	day := s.tracker.Today()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := clock.Parse(raw)
		if err != nil {
			logger.Warn("Unparseable date in toggle request", "date", raw)
			writeError(w, err)
			return
		}
		day = parsed
	}

	completed, err := s.tracker.Toggle(habitID, day)
	if err != nil {
		logger.Error("Failed to toggle habit", "habit_id", habitID, "date", day, "error", err)
		writeError(w, err)
		return
	}
	logger.Info("Habit toggled", "habit_id", habitID, "date", day, "completed", completed)
	togglesTotal.WithLabelValues(fmt.Sprintf("%t", completed)).Inc()

	if err := writeJSON(w, http.StatusOK, ToggleResponse{Completed: completed}); err != nil {
		logger.Error("Failed to serialize toggle response", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getSummary(w http.ResponseWriter, _ *http.Request) {
	summary, err := s.tracker.Summary()
	if err != nil {
		logger.Error("Failed to compute summary", "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, summary); err != nil {
		logger.Error("Failed to serialize summary response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	info := versioninfo.VersionInfo{
		Version:   versioninfo.Version,
		BuildDate: versioninfo.BuildDate,
	}
	if err := writeJSON(w, http.StatusOK, info); err != nil {
		logger.Error("Failed to serialize version info response", "error", err)
		http.Error(w, `{"error":"failed to serialize version info"}`, http.StatusInternalServerError)
		return
	}
}

package server

import (
	"encoding/json"
	"net/http"

	"habitd/internal/tracker"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	tracker *tracker.Tracker
}

func New(tr *tracker.Tracker) *Server {
	return &Server{tracker: tr}
}

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	r.Get("/version", s.getVersionInfo)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/day", s.getDay)
	r.Get("/summary", s.getSummary)
	r.Route("/habits", func(r chi.Router) {
		r.Post("/", s.createHabit)
		r.Get("/", s.listHabits)
		r.Patch("/{habit_id}/toggle", s.toggleHabit)
	})
	return r
}

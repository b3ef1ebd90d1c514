package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
//
// Routes:
//   - GET  /api/v1/health                 Service health
//   - GET  /api/v1/settings/verbosity     Current verbosity flag
//   - PUT  /api/v1/settings/verbosity     Set verbosity flag
//   - GET  {websocket.path}               WebSocket live tail (default /ws)
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// WebSocket live tail, mounted at the configured path
	r.Get(s.wsCfg.Path, s.handleWebSocket)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/verbosity", s.handleGetVerbosity)
			r.Put("/verbosity", s.handleSetVerbosity)
		})
	})

	return r
}

// handleHealth returns service health status.
//
// Reports the overall daemon status plus per-dependency checks for the
// MQTT connection and the settings database when those are wired.
// Degraded dependencies downgrade the status but the endpoint still
// returns 200; callers inspect the body.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)
	status := "ok"

	if s.mqtt != nil {
		if s.mqtt.IsConnected() {
			checks["mqtt"] = "connected"
		} else {
			checks["mqtt"] = "disconnected"
			status = "degraded"
		}
	}

	if s.db != nil {
		if err := s.db.HealthCheck(r.Context()); err != nil {
			checks["database"] = "unavailable"
			status = "degraded"
		} else {
			checks["database"] = "ok"
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  status,
		"version": s.version,
		"checks":  checks,
	})
}

package api

import (
	"encoding/json"
	"net/http"
)

// verbosityResponse is the JSON body for GET/PUT /api/v1/settings/verbosity.
type verbosityResponse struct {
	Verbose bool `json:"verbose"`
}

// verbosityRequest is the JSON body accepted by PUT /api/v1/settings/verbosity.
type verbosityRequest struct {
	Verbose *bool `json:"verbose"`
}

// handleGetVerbosity returns the current verbosity flag.
//
// GET /api/v1/settings/verbosity
//
// Response: 200 OK with {"verbose": bool}
func (s *Server) handleGetVerbosity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, verbosityResponse{
		Verbose: s.settings.Verbose(r.Context()),
	})
}

// handleSetVerbosity updates the verbosity flag.
//
// PUT /api/v1/settings/verbosity
//
// Request body: {"verbose": bool}
//
// The new value takes effect on the next decoded intent; in-flight
// decodes keep the flag they read at message arrival.
//
// Response: 200 OK with the stored value
// Errors: 400 if the body is malformed or "verbose" is missing,
// 500 if persisting fails
func (s *Server) handleSetVerbosity(w http.ResponseWriter, r *http.Request) {
	var req verbosityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Verbose == nil {
		writeBadRequest(w, "missing field: verbose")
		return
	}

	if err := s.settings.SetVerbose(r.Context(), *req.Verbose); err != nil {
		s.logger.Error("failed to persist verbosity setting", "error", err)
		writeInternalError(w, "failed to save setting")
		return
	}

	s.logger.Info("verbosity setting changed", "verbose", *req.Verbose)

	if s.hub != nil {
		s.hub.Broadcast(ChannelSettings, verbosityResponse{Verbose: *req.Verbose})
	}

	writeJSON(w, http.StatusOK, verbosityResponse{Verbose: *req.Verbose})
}

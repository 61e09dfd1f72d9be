package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/remote-pathfinder/internal/matching"
	"github.com/jonathan/remote-pathfinder/internal/types"
)

// maxBodyBytes bounds the profile request body.
const maxBodyBytes = 64 << 10

// handleGenerate handles POST /api/generate
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.With("request_id", RequestID(r.Context()))

	var profile types.UserProfile
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&profile); err != nil {
		if errors.Is(err, io.EOF) {
			s.errorResponse(w, http.StatusBadRequest, "request body is empty")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := profile.Validate(); err != nil {
		verr := fromValidator(err)
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	jobs, err := s.matcher.Generate(r.Context(), profile)
	if err != nil {
		logger.Error("generation failed", "kind", matching.Kind(err), "error", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	logger.Info("generated job matches", "count", len(jobs))
	s.jsonResponse(w, http.StatusOK, types.GenerateResponse{Jobs: jobs})
}

// ModelInfo describes the model backing the generate endpoint.
type ModelInfo struct {
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Configured bool   `json:"configured"`
}

// handleModel handles GET /api/model
func (s *Server) handleModel(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, ModelInfo{
		Provider:   s.provider,
		Model:      s.matcher.Model(),
		Configured: s.matcher.Configured(),
	})
}

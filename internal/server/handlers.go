package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/style-assistant/internal/types"
)

// validate checks request structs against their validation tags.
var validate = validator.New()

// handleRoot returns static service metadata.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	// "GET /" also matches unregistered paths; keep those as 404s.
	if r.URL.Path != "/" {
		s.errorResponse(w, http.StatusNotFound, "not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"name":        ServiceName,
		"description": "AI Style Assistant backend",
		"version":     ServiceVersion,
		"endpoints": map[string]string{
			"/chat":      "Chat with the stylist NPC",
			"/recommend": "Get outfit recommendations by theme",
		},
	})
}

// handleChat replies to a user prompt from the NPC reply pools.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		s.errorResponse(w, http.StatusBadRequest, "prompt cannot be empty")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.assistant.Chat(r.Context(), req))
}

// handleRecommend runs the recommendation pipeline for a theme.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil || strings.TrimSpace(req.Theme) == "" {
		s.errorResponse(w, http.StatusBadRequest, "theme cannot be empty")
		return
	}

	result, err := s.assistant.Recommend(r.Context(), req)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "recommendation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.RecommendResponse{
		Success: result.Success,
		UserID:  req.UserID,
		Message: result.Message,
		Outfit:  result.Outfit,
	})
}

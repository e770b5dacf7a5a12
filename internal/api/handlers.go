package api

import (
	"encoding/json"
	"net/http"

	"github.com/okeefe/babblebox/internal/icons"
	"github.com/okeefe/babblebox/internal/nav"
	"github.com/okeefe/babblebox/internal/speech"
)

// SelectRequest represents the request body for /v1/screen/select.
type SelectRequest struct {
	Key string `json:"key"`
}

// TapRequest represents the request body for /v1/tap.
type TapRequest struct {
	Category string `json:"category"`
	Slug     string `json:"slug"`
}

// TapResponse represents the response body for /v1/tap.
type TapResponse struct {
	Spoken string `json:"spoken"`
}

// ScreenResponse represents the current navigation state.
type ScreenResponse struct {
	Screen   string `json:"screen"`
	Category string `json:"category,omitempty"`
}

// CategorySummary is one home-grid tile.
type CategorySummary struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// CatalogResponse represents the response body for /v1/catalog.
type CatalogResponse struct {
	Categories []CategorySummary `json:"categories"`
}

// ItemView is one card in a category grid, decorated with its visual.
type ItemView struct {
	Slug    string `json:"slug"`
	Label   string `json:"label"`
	IconURL string `json:"icon_url,omitempty"`
	Glyph   string `json:"glyph"`
	Color   string `json:"color"`
}

// CategoryResponse represents the response body for /v1/catalog/{key}.
type CategoryResponse struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Items []ItemView `json:"items"`
}

// SpeakingResponse represents the live speaking signal.
type SpeakingResponse struct {
	Speaking bool `json:"speaking"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the response body for /v1/healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealthz handles GET /v1/healthz requests.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

// handleCatalog handles GET /v1/catalog requests.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := CatalogResponse{Categories: make([]CategorySummary, 0, s.catalog.Len())}
	for _, c := range s.catalog.Categories() {
		resp.Categories = append(resp.Categories, CategorySummary{Key: c.Key, Label: c.Label})
	}
	json.NewEncoder(w).Encode(resp)
}

// handleCategory handles GET /v1/catalog/{key} requests.
func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	key := r.PathValue("key")
	cat, ok := s.catalog.Get(key)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "unknown category"})
		return
	}

	resp := CategoryResponse{
		Key:   cat.Key,
		Label: cat.Label,
		Items: make([]ItemView, 0, len(cat.Items)),
	}
	for _, item := range cat.Items {
		visual := icons.Lookup(item.Slug)
		resp.Items = append(resp.Items, ItemView{
			Slug:    item.Slug,
			Label:   item.Label,
			IconURL: item.IconURL,
			Glyph:   visual.Glyph,
			Color:   visual.Color,
		})
	}
	json.NewEncoder(w).Encode(resp)
}

// handleScreen handles GET /v1/screen requests.
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	s.writeScreen(w)
}

// handleSelect handles POST /v1/screen/select requests. An unknown key
// is a defensive no-op: the response carries the unchanged state.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warn("failed to decode select request", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid JSON body"})
		return
	}

	s.machine.SelectCategory(req.Key)
	s.writeScreen(w)
}

// handleBack handles POST /v1/screen/back requests.
func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	s.machine.Back()
	s.writeScreen(w)
}

// handleTap handles POST /v1/tap requests: normalize the slug to its
// speech text and hand it to the controller.
func (s *Server) handleTap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req TapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warn("failed to decode tap request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid JSON body"})
		return
	}

	if req.Slug == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "slug is required"})
		return
	}

	text := speech.TextFor(req.Category, req.Slug)
	s.controller.Speak(text)

	s.logger.Info("item tapped", "category", req.Category, "slug", req.Slug, "spoken", text)

	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(TapResponse{Spoken: text})
}

// handleSpeaking handles GET /v1/speaking requests.
func (s *Server) handleSpeaking(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SpeakingResponse{Speaking: s.controller.IsSpeaking()})
}

func (s *Server) writeScreen(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")

	state := s.machine.Current()
	resp := ScreenResponse{Screen: state.Screen.String()}
	if state.Screen == nav.ScreenCategory {
		resp.Category = state.CategoryKey
	}
	json.NewEncoder(w).Encode(resp)
}

// Package server exposes the two boundary operations of the film-map core
// over HTTP for the presentation shell: the full record set and search-driven
// geocoding. The record set is fixed at construction and never mutated here.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/cityscope/filmmap/internal/model"
	"github.com/cityscope/filmmap/pkg/geocode"
)

// Geocoder is the lookup dependency, satisfied by *geocode.Client.
type Geocoder interface {
	Lookup(ctx context.Context, query string) (*geocode.Result, error)
}

// Options configures the Server.
type Options struct {
	AllowedOrigins []string
	Viewport       model.Viewport
}

// Server serves the record set and search lookups.
type Server struct {
	records  []model.Location
	geocoder Geocoder
	viewport model.Viewport
	router   chi.Router
}

// New creates a Server over an already-loaded record set.
func New(records []model.Location, g Geocoder, opts Options) *Server {
	viewport := opts.Viewport
	if viewport == (model.Viewport{}) {
		viewport = model.DefaultViewport
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s := &Server{
		records:  records,
		geocoder: g,
		viewport: viewport,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/locations", s.handleLocations)
		r.Get("/search", s.handleSearch)
		r.Get("/viewport", s.handleViewport)
	})

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

type boundsResponse struct {
	MinLatitude  float64 `json:"min_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MaxLongitude float64 `json:"max_longitude"`
}

type locationsResponse struct {
	Count     int              `json:"count"`
	Bounds    *boundsResponse  `json:"bounds,omitempty"`
	Locations []model.Location `json:"locations"`
}

type searchResponse struct {
	Query     string  `json:"query"`
	Found     bool    `json:"found"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Zoom      int     `json:"zoom,omitempty"`
	Message   string  `json:"message,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLocations(w http.ResponseWriter, _ *http.Request) {
	resp := locationsResponse{
		Count:     len(s.records),
		Locations: s.records,
	}
	if b := model.Bounds(s.records); b != nil {
		resp.Bounds = &boundsResponse{
			MinLatitude:  b.Min(1),
			MinLongitude: b.Min(0),
			MaxLatitude:  b.Max(1),
			MaxLongitude: b.Max(0),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleSearch resolves ?q= to a map center. Lookup failures are advisories
// scoped to this request; the record set stays fully usable.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result, err := s.geocoder.Lookup(r.Context(), query)
	if err != nil {
		zap.L().Warn("search lookup failed",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.String("query", query),
			zap.Error(err),
		)
		writeJSON(w, http.StatusBadGateway, searchResponse{
			Query:   query,
			Found:   false,
			Message: fmt.Sprintf("geocoding failed for %q: %s", query, err),
		})
		return
	}
	if !result.Found {
		writeJSON(w, http.StatusOK, searchResponse{
			Query:   query,
			Found:   false,
			Message: fmt.Sprintf("location not found: %q", query),
		})
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:     query,
		Found:     true,
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
		Zoom:      model.SearchZoom,
	})
}

func (s *Server) handleViewport(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.viewport)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}

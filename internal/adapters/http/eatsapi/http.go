// Package eatsapi declares HTTP contracts and route registration helpers
// for the restaurant discovery service.
package eatsapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/courtside-labs/courtside/internal/adapters/http/api"
	"github.com/courtside-labs/courtside/internal/app/eats"
	"github.com/courtside-labs/courtside/internal/domain/model"
)

// Dependencies required by HTTP handlers.
type Dependencies interface {
	// Search lists restaurants by name substring and vote bounds.
	Search(ctx context.Context, params eats.SearchParams) ([]model.Restaurant, error)

	// Votes returns the inclusive vote span present in the table.
	Votes(ctx context.Context) (eats.VoteRange, error)

	// Locations lists restaurants that carry coordinates.
	Locations(ctx context.Context) ([]model.RestaurantLocation, error)
}

// Server wires HTTP routes for the restaurant API.
type Server struct {
	healthHandler      *api.HealthHandler
	statsHandler       *api.StatsHandler
	restaurantsHandler *RestaurantsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider api.StatsProvider) *Server {
	return &Server{
		healthHandler:      api.NewHealthHandler(),
		statsHandler:       api.NewStatsHandler(statsProvider),
		restaurantsHandler: NewRestaurantsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", api.MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", api.MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/restaurants", api.MetricsMiddleware(s.restaurantsHandler.HandleSearch, "restaurants"))
	mux.HandleFunc("/restaurants/votes", api.MetricsMiddleware(s.restaurantsHandler.HandleVotes, "restaurant_votes"))
	mux.HandleFunc("/restaurants/locations", api.MetricsMiddleware(s.restaurantsHandler.HandleLocations, "restaurant_locations"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

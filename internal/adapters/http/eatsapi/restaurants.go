// Package eatsapi declares HTTP contracts and route registration helpers
// for the restaurant discovery service.
package eatsapi

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/courtside-labs/courtside/internal/adapters/http/api"
	"github.com/courtside-labs/courtside/internal/app/eats"
	"github.com/courtside-labs/courtside/internal/domain/model"
	"github.com/courtside-labs/courtside/pkg/metrics"
)

// RestaurantsHandler handles restaurant search, vote range, and location
// requests.
type RestaurantsHandler struct {
	deps Dependencies
}

// NewRestaurantsHandler creates a new restaurants handler.
func NewRestaurantsHandler(deps Dependencies) *RestaurantsHandler {
	return &RestaurantsHandler{deps: deps}
}

// HandleSearch handles GET /restaurants?name=&min_votes=&max_votes=
// requests, ordered by votes descending. With ?format=csv the listing
// downloads as a CSV file.
func (h *RestaurantsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "eatsapi.search"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()

	// Absent bounds widen to the table's own vote span.
	vr, err := h.deps.Votes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", api.Wrap(op, err))
		return
	}
	params := eats.SearchParams{
		Name:     q.Get("name"),
		MinVotes: vr.Min,
		MaxVotes: vr.Max,
	}
	if v := q.Get("min_votes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", api.NewKind(op, api.ErrBadRequest))
			return
		}
		params.MinVotes = n
	}
	if v := q.Get("max_votes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", api.NewKind(op, api.ErrBadRequest))
			return
		}
		params.MaxVotes = n
	}
	if params.MinVotes > params.MaxVotes {
		writeError(w, http.StatusBadRequest, "bad_request", api.NewKind(op, api.ErrBadRequest))
		return
	}

	restaurants, err := h.deps.Search(r.Context(), params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", api.Wrap(op, err))
		return
	}

	if q.Get("format") == "csv" {
		writeRestaurantsCSV(w, restaurants)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

// HandleVotes handles GET /restaurants/votes requests.
func (h *RestaurantsHandler) HandleVotes(w http.ResponseWriter, r *http.Request) {
	const op = "eatsapi.votes"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	vr, err := h.deps.Votes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", api.Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, vr)
}

// HandleLocations handles GET /restaurants/locations requests. Only rows
// with coordinates are returned.
func (h *RestaurantsHandler) HandleLocations(w http.ResponseWriter, r *http.Request) {
	const op = "eatsapi.locations"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	locations, err := h.deps.Locations(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", api.Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, locations)
}

// writeRestaurantsCSV streams the search result as a CSV download.
func writeRestaurantsCSV(w http.ResponseWriter, restaurants []model.Restaurant) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="restaurants.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"name", "votes", "city"})
	for _, r := range restaurants {
		_ = cw.Write([]string{r.Name, strconv.Itoa(r.Votes), r.City})
	}
	cw.Flush()
	metrics.RecordCSVExport()
}

// Package api declares HTTP contracts and route registration helpers for
// the league analytics service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/courtside-labs/courtside/internal/app/league"
	"github.com/courtside-labs/courtside/internal/domain/model"
)

// InjuriesDependencies defines the interface for injury inserts.
type InjuriesDependencies interface {
	AddInjury(ctx context.Context, in model.Injury) (int64, error)
}

// InjuriesHandler handles injury inserts.
type InjuriesHandler struct {
	deps InjuriesDependencies
}

// NewInjuriesHandler creates a new injuries handler.
func NewInjuriesHandler(deps InjuriesDependencies) *InjuriesHandler {
	return &InjuriesHandler{deps: deps}
}

// HandlePostInjury handles POST /injuries requests. Injuries are
// append-only; there is no update or delete route.
func (h *InjuriesHandler) HandlePostInjury(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_injury"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req injuryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	id, err := h.deps.AddInjury(r.Context(), model.Injury{
		PlayerID:    req.PlayerID,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GamesMissed: req.GamesMissed,
		Recurring:   req.Recurring,
	})
	if err != nil {
		switch {
		case league.IsNotFound(err):
			writeError(w, http.StatusNotFound, "not_found", err)
		case errors.Is(err, league.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "bad_request", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{ID: id})
}

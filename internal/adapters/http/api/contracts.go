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

// ContractsDependencies defines the interface for contract inserts.
type ContractsDependencies interface {
	AddContract(ctx context.Context, c model.Contract) (int64, error)
}

// ContractsHandler handles contract inserts.
type ContractsHandler struct {
	deps ContractsDependencies
}

// NewContractsHandler creates a new contracts handler.
func NewContractsHandler(deps ContractsDependencies) *ContractsHandler {
	return &ContractsHandler{deps: deps}
}

// HandlePostContract handles POST /contracts requests. Contracts are
// append-only; there is no update or delete route.
func (h *ContractsHandler) HandlePostContract(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_contract"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	id, err := h.deps.AddContract(r.Context(), model.Contract{
		PlayerID:      req.PlayerID,
		AnnualSalaryM: req.AnnualSalaryM,
		Years:         req.Years,
		Type:          req.Type,
		StartSeason:   req.StartSeason,
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

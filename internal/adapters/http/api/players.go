// Package api declares HTTP contracts and route registration helpers for
// the league analytics service.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/courtside-labs/courtside/internal/adapters/headshot"
	"github.com/courtside-labs/courtside/internal/app/league"
	"github.com/courtside-labs/courtside/internal/domain/model"
)

// PlayersDependencies defines the interface for player operations.
type PlayersDependencies interface {
	FilterPlayers(ctx context.Context, params league.FilterParams) ([]model.PlayerSeason, error)
	PlayerCard(ctx context.Context, playerID int64) (league.PlayerCard, error)
	Headshot(ctx context.Context, playerID int64) (headshot.Image, error)
}

// PlayersHandler handles the player listing and per-player subtree.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandleListPlayers handles GET /players?position=&team=&name= requests.
// Position and team match exactly; name is a case-insensitive substring.
func (h *PlayersHandler) HandleListPlayers(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_players"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	players, err := h.deps.FilterPlayers(r.Context(), league.FilterParams{
		Position: q.Get("position"),
		Team:     q.Get("team"),
		Name:     q.Get("name"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, players)
}

// HandlePlayerSubtree routes GET /players/{id} and GET /players/{id}/headshot.
func (h *PlayersHandler) HandlePlayerSubtree(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameters after /players/
	path := strings.TrimPrefix(r.URL.Path, "/players/")
	idPart, rest, _ := strings.Cut(path, "/")
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch rest {
	case "":
		h.handleGetCard(w, r, id)
	case "headshot":
		h.handleGetHeadshot(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *PlayersHandler) handleGetCard(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "api.get_player"
	card, err := h.deps.PlayerCard(r.Context(), id)
	if err != nil {
		if league.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (h *PlayersHandler) handleGetHeadshot(w http.ResponseWriter, r *http.Request, id int64) {
	const op = "api.get_headshot"
	img, err := h.deps.Headshot(r.Context(), id)
	if err != nil {
		switch {
		case league.IsNotFound(err), errors.Is(err, headshot.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", err)
		default:
			// Upstream image trouble is not our outage.
			writeError(w, http.StatusBadGateway, "upstream_error", Wrap(op, err))
		}
		return
	}
	w.Header().Set("Content-Type", img.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}

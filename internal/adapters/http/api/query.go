// Package api declares HTTP contracts and route registration helpers for
// the league analytics service.
package api

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/courtside-labs/courtside/internal/domain/model"
	"github.com/courtside-labs/courtside/pkg/metrics"
)

// QueryDependencies defines the interface for translated queries.
type QueryDependencies interface {
	Ask(ctx context.Context, question string) (model.QueryResult, error)
}

// QueryHandler handles free-text question requests.
type QueryHandler struct {
	deps QueryDependencies
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(deps QueryDependencies) *QueryHandler {
	return &QueryHandler{deps: deps}
}

// HandlePostQuery handles POST /query requests. With ?format=csv the result
// downloads as a CSV file instead of JSON.
func (h *QueryHandler) HandlePostQuery(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_query"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing question")))
		return
	}

	res, err := h.deps.Ask(r.Context(), req.Question)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// writeCSV streams a query result as a CSV download, header row first.
func writeCSV(w http.ResponseWriter, res model.QueryResult) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="query_results.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write(res.Columns)
	for _, row := range res.Rows {
		_ = cw.Write(row)
	}
	cw.Flush()
	metrics.RecordCSVExport()
}

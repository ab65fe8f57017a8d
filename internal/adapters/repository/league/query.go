package league

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/courtside-labs/courtside/internal/domain/model"
)

// RunQuery executes a translated read-only query and stringifies the rows
// for display and CSV export. Only SELECT statements are accepted; the
// translator never emits anything else, this guards against misuse.
func (s *Store) RunQuery(ctx context.Context, sqlText string, args []any) (res model.QueryResult, err error) {
	start := time.Now()
	defer func() { observe("run_query", start, err) }()

	if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(sqlText)), "SELECT") {
		return model.QueryResult{}, fmt.Errorf("%w: only SELECT is allowed", ErrInvalidQuery)
	}

	rows, err := s.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return model.QueryResult{}, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return model.QueryResult{}, fmt.Errorf("failed to read columns: %w", err)
	}
	res.Columns = cols

	values := make([]sql.RawBytes, len(cols))
	scanArgs := make([]any, len(cols))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			return model.QueryResult{}, fmt.Errorf("failed to scan query row: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = formatCell(v)
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return model.QueryResult{}, fmt.Errorf("failed to iterate query rows: %w", err)
	}
	return res, nil
}

// formatCell renders one raw column value. Floats are trimmed so 27.100000
// exports as 27.1.
func formatCell(v sql.RawBytes) string {
	if v == nil {
		return ""
	}
	str := string(v)
	if f, err := strconv.ParseFloat(str, 64); err == nil && strings.Contains(str, ".") {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return str
}

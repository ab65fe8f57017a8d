// Package nlquery maps free-text questions onto a fixed set of
// parameterized SQL templates. This is lookup-table dispatch, not a parser:
// an ordered list of substring tests where the first match wins, plus a
// digit scan that pulls the first integer literal out of the question.
package nlquery

import (
	"regexp"
	"strconv"
	"strings"
)

// Intent tags the template a question matched.
type Intent string

// Known intents, one per template plus the fallback listing.
const (
	IntentSalaryOver        Intent = "salary_over"
	IntentTopScorers        Intent = "top_scorers"
	IntentRecurringInjuries Intent = "recurring_injuries"
	IntentGamesMissed       Intent = "games_missed"
	IntentTopWinShares      Intent = "top_win_shares"
	IntentPlayerListing     Intent = "player_listing"
)

// Query is a translated, parameterized query ready for execution against
// the league store.
type Query struct {
	Intent Intent `json:"intent"`
	SQL    string `json:"sql"`
	Args   []any  `json:"args"`
}

// template is one dispatch rule. match tests the lower-cased question;
// build receives the first integer found in the text, or the template
// default when none is present.
type template struct {
	intent   Intent
	defaultN int
	match    func(q string) bool
	build    func(n int) Query
}

// fallbackLimit is the row cap of the default player listing.
const fallbackLimit = 10

// templates is evaluated in order; the first match wins. The order and the
// substring tests are a compatibility contract, do not reorder casually.
var templates = []template{
	{
		intent:   IntentSalaryOver,
		defaultN: 20,
		match: func(q string) bool {
			return strings.Contains(q, "over") && strings.Contains(q, "million")
		},
		build: func(n int) Query {
			return Query{
				SQL: `SELECT p.name, p.team, p.position, c.annual_salary_millions
FROM players p
JOIN contracts c ON c.player_id = p.id
WHERE c.annual_salary_millions > ?
ORDER BY c.annual_salary_millions DESC`,
				Args: []any{float64(n)},
			}
		},
	},
	{
		intent:   IntentTopScorers,
		defaultN: 5,
		match: func(q string) bool {
			return strings.Contains(q, "scorer") ||
				(strings.Contains(q, "top") && strings.Contains(q, "point"))
		},
		build: func(n int) Query {
			return Query{
				SQL: `SELECT p.name, p.team, s.season, s.points_per_game
FROM players p
JOIN performance_stats s ON s.player_id = p.id
ORDER BY s.points_per_game DESC
LIMIT ?`,
				Args: []any{n},
			}
		},
	},
	{
		intent: IntentRecurringInjuries,
		match: func(q string) bool {
			return strings.Contains(q, "recurring injur")
		},
		build: func(int) Query {
			return Query{
				SQL: `SELECT p.name, p.team, i.type, i.games_missed
FROM players p
JOIN injuries i ON i.player_id = p.id
WHERE i.recurring = 1
ORDER BY p.name`,
			}
		},
	},
	{
		intent:   IntentGamesMissed,
		defaultN: 10,
		match: func(q string) bool {
			return strings.Contains(q, "missed") && strings.Contains(q, "game")
		},
		build: func(n int) Query {
			return Query{
				SQL: `SELECT p.name, p.team, i.type, i.games_missed
FROM players p
JOIN injuries i ON i.player_id = p.id
WHERE i.games_missed >= ?
ORDER BY i.games_missed DESC`,
				Args: []any{n},
			}
		},
	},
	{
		intent:   IntentTopWinShares,
		defaultN: 5,
		match: func(q string) bool {
			return strings.Contains(q, "win share")
		},
		build: func(n int) Query {
			return Query{
				SQL: `SELECT p.name, p.team, s.season, s.win_shares
FROM players p
JOIN performance_stats s ON s.player_id = p.id
ORDER BY s.win_shares DESC
LIMIT ?`,
				Args: []any{n},
			}
		},
	},
}

var firstInteger = regexp.MustCompile(`\d+`)

// Translate maps a question onto the first matching template. Unmatched
// questions fall back to a fixed listing of the first players.
func Translate(question string) Query {
	q := strings.ToLower(question)

	for _, t := range templates {
		if !t.match(q) {
			continue
		}
		n := t.defaultN
		if lit := firstInteger.FindString(q); lit != "" {
			if parsed, err := strconv.Atoi(lit); err == nil {
				n = parsed
			}
		}
		out := t.build(n)
		out.Intent = t.intent
		return out
	}

	return Query{
		Intent: IntentPlayerListing,
		SQL: `SELECT id, name, position, team
FROM players
ORDER BY id
LIMIT ?`,
		Args: []any{fallbackLimit},
	}
}

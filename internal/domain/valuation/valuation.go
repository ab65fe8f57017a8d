// Package valuation computes the derived player value metrics: the 0-100
// value index and the salary-adjusted contract efficiency rating.
package valuation

import (
	"fmt"
	"math"
)

// Term weights and saturation caps for the value index. A stat line at every
// cap scores exactly 100.
const (
	scoringWeight      = 30.0
	perWeight          = 25.0
	winShareWeight     = 20.0
	fieldGoalWeight    = 15.0
	availabilityWeight = 10.0

	ppgCap          = 35.0
	perCap          = 35.0
	winSharesCap    = 15.0
	fieldGoalPctCap = 60.0
	fullSeasonGames = 82.0

	efficiencyScale = 10.0
)

// StatLine carries the per-season inputs of the value index.
type StatLine struct {
	PointsPerGame float64
	PER           float64
	WinShares     float64
	FieldGoalPct  float64
	GamesPlayed   int
}

// ValueIndex blends scoring, efficiency, and availability into a single
// score. The scoring, PER, and win-share terms saturate at their caps; the
// field-goal and availability terms scale linearly.
//
// A negative input means the stat was absent upstream and is rejected with
// ErrMissingStat rather than propagated into the arithmetic.
func ValueIndex(s StatLine) (float64, error) {
	switch {
	case s.PointsPerGame < 0:
		return 0, fmt.Errorf("%w: points_per_game", ErrMissingStat)
	case s.PER < 0:
		return 0, fmt.Errorf("%w: per", ErrMissingStat)
	case s.WinShares < 0:
		return 0, fmt.Errorf("%w: win_shares", ErrMissingStat)
	case s.FieldGoalPct < 0:
		return 0, fmt.Errorf("%w: field_goal_pct", ErrMissingStat)
	case s.GamesPlayed < 0:
		return 0, fmt.Errorf("%w: games_played", ErrMissingStat)
	}

	score := scoringWeight*math.Min(s.PointsPerGame/ppgCap, 1) +
		perWeight*math.Min(s.PER/perCap, 1) +
		winShareWeight*math.Min(s.WinShares/winSharesCap, 1) +
		fieldGoalWeight*(s.FieldGoalPct/fieldGoalPctCap) +
		availabilityWeight*(float64(s.GamesPlayed)/fullSeasonGames)

	return score, nil
}

// Efficiency rates a contract as value for money: the value index divided by
// the annual salary in millions, scaled by 10. A non-positive salary is
// rejected with ErrZeroSalary instead of dividing.
func Efficiency(valueIndex, annualSalaryMillions float64) (float64, error) {
	if annualSalaryMillions <= 0 {
		return 0, ErrZeroSalary
	}
	return (valueIndex / annualSalaryMillions) * efficiencyScale, nil
}

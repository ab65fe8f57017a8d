package nlquery_test

import (
	"strings"
	"testing"

	"github.com/courtside-labs/courtside/internal/domain/nlquery"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTranslate(t *testing.T) {
	Convey("Given the template-dispatch translator", t, func() {
		Convey("When asked about players over a salary threshold", func() {
			q := nlquery.Translate("Show me all players making over 40 million")

			Convey("Then the salary template matches with the extracted amount", func() {
				So(q.Intent, ShouldEqual, nlquery.IntentSalaryOver)
				So(q.Args, ShouldResemble, []any{float64(40)})
				So(q.SQL, ShouldContainSubstring, "JOIN contracts")
				So(q.SQL, ShouldContainSubstring, "annual_salary_millions > ?")
			})
		})

		Convey("When asked without a number for a salary threshold", func() {
			q := nlquery.Translate("who is making over a million?")

			Convey("Then the template default applies", func() {
				So(q.Intent, ShouldEqual, nlquery.IntentSalaryOver)
				So(q.Args, ShouldResemble, []any{float64(20)})
			})
		})

		Convey("When asked for top scorers", func() {
			q := nlquery.Translate("Who are the top 5 scorers this season?")

			Convey("Then the scorer template matches with limit 5", func() {
				So(q.Intent, ShouldEqual, nlquery.IntentTopScorers)
				So(q.Args, ShouldResemble, []any{5})
				So(q.SQL, ShouldContainSubstring, "points_per_game DESC")
			})
		})

		Convey("When asked about recurring injuries", func() {
			q := nlquery.Translate("which players have a recurring injury?")

			Convey("Then the fixed recurring-injury query is returned with no parameter", func() {
				So(q.Intent, ShouldEqual, nlquery.IntentRecurringInjuries)
				So(q.Args, ShouldBeEmpty)
				So(q.SQL, ShouldContainSubstring, "recurring = 1")
			})
		})

		Convey("When asked about games missed", func() {
			q := nlquery.Translate("players that missed more than 20 games")

			Convey("Then the games-missed template matches with the extracted threshold", func() {
				So(q.Intent, ShouldEqual, nlquery.IntentGamesMissed)
				So(q.Args, ShouldResemble, []any{20})
			})
		})

		Convey("When asked about win shares", func() {
			q := nlquery.Translate("best win shares in the league")

			Convey("Then the win-share template matches with its default limit", func() {
				So(q.Intent, ShouldEqual, nlquery.IntentTopWinShares)
				So(q.Args, ShouldResemble, []any{5})
			})
		})

		Convey("When nothing matches", func() {
			q := nlquery.Translate("tell me a joke")

			Convey("Then the default ten-row player listing is returned", func() {
				So(q.Intent, ShouldEqual, nlquery.IntentPlayerListing)
				So(q.Args, ShouldResemble, []any{10})
				So(strings.Contains(q.SQL, "FROM players"), ShouldBeTrue)
			})
		})

		Convey("When two templates could match, the first in order wins", func() {
			q := nlquery.Translate("top scorers making over 30 million")

			Convey("Then the salary template wins because it is tested first", func() {
				So(q.Intent, ShouldEqual, nlquery.IntentSalaryOver)
				So(q.Args, ShouldResemble, []any{float64(30)})
			})
		})

		Convey("When the question carries several integers", func() {
			q := nlquery.Translate("top 3 scorers of the last 2 seasons")

			Convey("Then only the first integer is extracted", func() {
				So(q.Intent, ShouldEqual, nlquery.IntentTopScorers)
				So(q.Args, ShouldResemble, []any{3})
			})
		})

		Convey("When the question uses mixed case", func() {
			q := nlquery.Translate("RECURRING INJURIES please")

			Convey("Then matching is case-insensitive", func() {
				So(q.Intent, ShouldEqual, nlquery.IntentRecurringInjuries)
			})
		})
	})
}

package valuation_test

import (
	"errors"
	"testing"

	"github.com/courtside-labs/courtside/internal/domain/valuation"
	. "github.com/smartystreets/goconvey/convey"
)

func TestValueIndex(t *testing.T) {
	Convey("Given the value index calculator", t, func() {
		Convey("When every term is at its saturation cap", func() {
			score, err := valuation.ValueIndex(valuation.StatLine{
				PointsPerGame: 35,
				PER:           35,
				WinShares:     15,
				FieldGoalPct:  60,
				GamesPlayed:   82,
			})

			Convey("Then the index is exactly 100", func() {
				So(err, ShouldBeNil)
				So(score, ShouldEqual, 100)
			})
		})

		Convey("When every input is zero", func() {
			score, err := valuation.ValueIndex(valuation.StatLine{})

			Convey("Then the index is zero", func() {
				So(err, ShouldBeNil)
				So(score, ShouldEqual, 0)
			})
		})

		Convey("When scoring terms exceed their caps", func() {
			score, err := valuation.ValueIndex(valuation.StatLine{
				PointsPerGame: 50, // above the 35 cap
				PER:           40, // above the 35 cap
				WinShares:     20, // above the 15 cap
				FieldGoalPct:  60,
				GamesPlayed:   82,
			})

			Convey("Then each capped term saturates", func() {
				So(err, ShouldBeNil)
				So(score, ShouldEqual, 100)
			})
		})

		Convey("When a mid-range stat line is scored", func() {
			score, err := valuation.ValueIndex(valuation.StatLine{
				PointsPerGame: 17.5, // half of cap -> 15
				PER:           17.5, // half of cap -> 12.5
				WinShares:     7.5,  // half of cap -> 10
				FieldGoalPct:  30,   // half of cap -> 7.5
				GamesPlayed:   41,   // half a season -> 5
			})

			Convey("Then the terms add up linearly", func() {
				So(err, ShouldBeNil)
				So(score, ShouldAlmostEqual, 50, 0.0001)
			})
		})

		Convey("When a stat is missing (negative placeholder)", func() {
			_, err := valuation.ValueIndex(valuation.StatLine{
				PointsPerGame: -1,
				GamesPlayed:   82,
			})

			Convey("Then a typed missing-stat error is returned", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, valuation.ErrMissingStat), ShouldBeTrue)
			})
		})
	})
}

func TestEfficiency(t *testing.T) {
	Convey("Given the contract efficiency calculator", t, func() {
		Convey("When the salary is positive", func() {
			rating, err := valuation.Efficiency(80, 40)

			Convey("Then the rating is value index over salary, scaled by 10", func() {
				So(err, ShouldBeNil)
				So(rating, ShouldEqual, 20)
			})
		})

		Convey("When the salary is zero", func() {
			_, err := valuation.Efficiency(80, 0)

			Convey("Then a typed zero-salary error is returned", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, valuation.ErrZeroSalary), ShouldBeTrue)
			})
		})

		Convey("When the salary is negative", func() {
			_, err := valuation.Efficiency(50, -5)

			Convey("Then the same typed error is returned", func() {
				So(errors.Is(err, valuation.ErrZeroSalary), ShouldBeTrue)
			})
		})
	})
}

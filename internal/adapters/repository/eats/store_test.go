package eats_test

import (
	"context"
	"errors"
	"testing"

	"github.com/courtside-labs/courtside/internal/adapters/repository/eats"
	. "github.com/smartystreets/goconvey/convey"
)

func TestOpenDriverDispatch(t *testing.T) {
	Convey("Given the restaurant store opener", t, func() {
		ctx := context.Background()

		Convey("When the driver is unknown", func() {
			store, err := eats.Open(ctx, "oracle", "whatever")

			Convey("Then a typed unknown-driver error is returned", func() {
				So(store, ShouldBeNil)
				So(errors.Is(err, eats.ErrUnknownDriver), ShouldBeTrue)
			})
		})

		Convey("When the postgres DSN is malformed", func() {
			store, err := eats.Open(ctx, "postgres", "://not-a-dsn")

			Convey("Then opening fails without panicking", func() {
				So(store, ShouldBeNil)
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the mysql DSN is malformed", func() {
			store, err := eats.Open(ctx, "mysql", "not-a-dsn")

			Convey("Then opening fails without panicking", func() {
				So(store, ShouldBeNil)
				So(err, ShouldNotBeNil)
			})
		})
	})
}

package headshot_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/courtside-labs/courtside/internal/adapters/headshot"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFetch(t *testing.T) {
	Convey("Given a headshot client against a fake CDN", t, func() {
		ctx := context.Background()

		Convey("When the image exists", func(c C) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.URL.Path, ShouldEqual, "/42.png")
				w.Header().Set("Content-Type", "image/png")
				_, _ = w.Write([]byte("png-bytes"))
			}))
			defer srv.Close()

			client := headshot.NewClient(srv.URL)
			img, err := client.Fetch(ctx, 42)

			Convey("Then the image round-trips", func() {
				So(err, ShouldBeNil)
				So(img.ContentType, ShouldEqual, "image/png")
				So(string(img.Data), ShouldEqual, "png-bytes")
			})
		})

		Convey("When the upstream returns 404", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			}))
			defer srv.Close()

			client := headshot.NewClient(srv.URL)
			_, err := client.Fetch(ctx, 7)

			Convey("Then a typed not-found error is returned", func() {
				So(errors.Is(err, headshot.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When the upstream errors", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer srv.Close()

			client := headshot.NewClient(srv.URL)
			_, err := client.Fetch(ctx, 7)

			Convey("Then a typed fetch-failed error is returned", func() {
				So(errors.Is(err, headshot.ErrFetchFailed), ShouldBeTrue)
			})
		})

		Convey("When the upstream hangs past the timeout", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
			}))
			defer srv.Close()

			client := headshot.NewClient(srv.URL, headshot.WithTimeout(20*time.Millisecond))
			_, err := client.Fetch(ctx, 7)

			Convey("Then the fetch fails instead of blocking", func() {
				So(errors.Is(err, headshot.ErrFetchFailed), ShouldBeTrue)
			})
		})
	})
}

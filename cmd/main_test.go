package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	app "github.com/okian/pressdetective/internal/app"
	"github.com/okian/pressdetective/internal/config"
	"github.com/okian/pressdetective/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("PRESS_ADDR", ":8080")
			_ = os.Setenv("PRESS_VARIANT", "minimal")
			_ = os.Setenv("PRESS_ANALYZE_TIMEOUT_MS", "1500")
			defer func() {
				_ = os.Unsetenv("PRESS_ADDR")
				_ = os.Unsetenv("PRESS_VARIANT")
				_ = os.Unsetenv("PRESS_ANALYZE_TIMEOUT_MS")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.Variant, convey.ShouldEqual, config.VariantMinimal)
				convey.So(writeTimeout(cfg), convey.ShouldEqual, 1500*time.Millisecond+readTimeout)
			})
		})

		convey.Convey("When the analyze timeout is disabled", func() {
			convey.So(writeTimeout(config.New()), convey.ShouldEqual, time.Duration(0))
		})
	})
}

func TestNewMux(t *testing.T) {
	convey.Convey("Given a mux built from the default config", t, func() {
		svc, err := app.NewFromConfig(config.New(), logger.Get())
		convey.So(err, convey.ShouldBeNil)
		convey.So(svc.Start(context.Background()), convey.ShouldBeNil)
		defer svc.Stop()

		mux := newMux(context.Background(), svc)

		get := func(path string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
			return w
		}

		convey.Convey("Then every surface is routed", func() {
			for _, path := range []string{"/", "/healthz", "/stats", "/api/leaderboard", "/api-docs", "/openapi.yaml", "/static/style.css"} {
				convey.So(get(path).Code, convey.ShouldEqual, http.StatusOK)
			}
		})

		convey.Convey("And unknown paths are not found", func() {
			convey.So(get("/nope").Code, convey.ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		svc, err := app.NewFromConfig(config.New(), nil)
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("When the updaters run until their context ends", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
			convey.So(func() { startServiceMetricsUpdater(ctx, svc) }, convey.ShouldNotPanic)
		})

		convey.Convey("When the metrics are refreshed directly", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			convey.So(func() { updateServiceMetrics(svc) }, convey.ShouldNotPanic)

			convey.So(svc.Start(context.Background()), convey.ShouldBeNil)
			defer svc.Stop()
			convey.So(func() { updateServiceMetrics(svc) }, convey.ShouldNotPanic)
		})
	})
}

package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	service "github.com/okian/pressdetective/internal/app"
	"github.com/okian/pressdetective/internal/config"
	"github.com/okian/pressdetective/internal/domain/leaderboard"
	"github.com/okian/pressdetective/internal/domain/view"
	"github.com/okian/pressdetective/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewFromConfig(t *testing.T) {
	Convey("Given a default config", t, func() {
		cfg := config.New()

		Convey("Then the service uses the demo board and the styled preset", func() {
			svc, err := service.NewFromConfig(cfg, logger.Get())
			So(err, ShouldBeNil)
			So(svc.Style(), ShouldResemble, view.Styled)
			So(svc.GetStats()["leaderboard_policy"], ShouldEqual, string(leaderboard.PolicyStatic))

			So(svc.Start(context.Background()), ShouldBeNil)
			defer svc.Stop()
			board, err := svc.Leaderboard(context.Background(), "s1")
			So(err, ShouldBeNil)
			So(len(board), ShouldEqual, len(leaderboard.DemoEntries()))
		})

		Convey("When the minimal variant is selected", func() {
			cfg.Variant = config.VariantMinimal
			svc, err := service.NewFromConfig(cfg, nil)
			So(err, ShouldBeNil)
			So(svc.Style(), ShouldResemble, view.Minimal)
		})

		Convey("When the dynamic mode is selected", func() {
			cfg.LeaderboardMode = config.LeaderboardDynamic
			cfg.APIBaseURL = "http://backend:8000"
			svc, err := service.NewFromConfig(cfg, nil)
			So(err, ShouldBeNil)
			So(svc.GetStats()["leaderboard_policy"], ShouldEqual, string(leaderboard.PolicyDynamic))
		})

		Convey("When a seed file is configured", func() {
			path := filepath.Join(t.TempDir(), "seed.yaml")
			So(os.WriteFile(path, []byte("publishers:\n  - publisher: X\n    avg_score: 0.9\n"), 0o600), ShouldBeNil)
			cfg.LeaderboardSeedFile = path

			svc, err := service.NewFromConfig(cfg, nil)
			So(err, ShouldBeNil)
			So(svc.Start(context.Background()), ShouldBeNil)
			defer svc.Stop()

			board, err := svc.Leaderboard(context.Background(), "s1")
			So(err, ShouldBeNil)
			So(len(board), ShouldEqual, 1)
			So(board[0].Publisher, ShouldEqual, "X")
		})

		Convey("When the seed file is missing", func() {
			cfg.LeaderboardSeedFile = filepath.Join(t.TempDir(), "missing.yaml")
			svc, err := service.NewFromConfig(cfg, nil)
			So(errors.Is(err, leaderboard.ErrNotFound), ShouldBeTrue)
			So(svc, ShouldBeNil)
		})

		Convey("When the analyze endpoint is blank", func() {
			cfg.AnalyzeEndpoint = " "
			_, err := service.NewFromConfig(cfg, nil)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})

	Convey("Given a nil config", t, func() {
		_, err := service.NewFromConfig(nil, nil)
		So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
	})
}

package service

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/pressdetective/internal/config"
	"github.com/okian/pressdetective/internal/domain/analysis"
	"github.com/okian/pressdetective/internal/domain/leaderboard"
	"github.com/okian/pressdetective/internal/domain/view"
	"github.com/okian/pressdetective/pkg/logger"
)

// NewFromConfig builds a Service with the collaborators cfg describes. The
// returned service still needs Start.
func NewFromConfig(cfg *config.Config, l logger.Logger) (*Service, error) {
	const op = "service.new_from_config"
	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", op, config.ErrInvalidConfig)
	}

	analyzeURL, err := cfg.AnalyzeURL()
	if err != nil {
		return nil, config.WrapKind(op, config.ErrInvalidConfig, err)
	}
	clientOpts := []analysis.Option{analysis.WithTimeout(cfg.AnalyzeTimeout())}
	if l != nil {
		clientOpts = append(clientOpts, analysis.WithLogger(l.Named("analysis")))
	}
	client := analysis.NewClient(analyzeURL, clientOpts...)

	board, err := boardFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return New(
		WithLogger(l),
		WithAnalyzer(client),
		WithLeaderboard(board),
		WithSessionCapacity(cfg.SessionCapacity),
		WithStyle(view.StyleFor(cfg.Variant)),
	), nil
}

func boardFromConfig(cfg *config.Config) (leaderboard.Provider, error) {
	if cfg.LeaderboardMode == config.LeaderboardDynamic {
		u, err := cfg.LeaderboardURL()
		if err != nil {
			return nil, config.WrapKind("service.board", config.ErrInvalidConfig, err)
		}
		return leaderboard.NewRemoteProvider(u, &http.Client{Timeout: cfg.AnalyzeTimeout()}), nil
	}
	if path := strings.TrimSpace(cfg.LeaderboardSeedFile); path != "" {
		entries, err := leaderboard.LoadSeedFile(path)
		if err != nil {
			return nil, err
		}
		return leaderboard.NewStaticProvider(entries), nil
	}
	return leaderboard.NewDemoProvider(), nil
}

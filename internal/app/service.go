// Package service wires the analyze client, the leaderboard provider and the
// per-visitor session state behind the operations both front-ends use.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/okian/pressdetective/internal/domain/analysis"
	"github.com/okian/pressdetective/internal/domain/leaderboard"
	"github.com/okian/pressdetective/internal/domain/model"
	"github.com/okian/pressdetective/internal/domain/session"
	"github.com/okian/pressdetective/internal/domain/view"
	"github.com/okian/pressdetective/pkg/logger"
	"github.com/okian/pressdetective/pkg/metrics"
)

// Service implements the operations behind the page, the JSON API and the console.
type Service struct {
	mu sync.RWMutex

	// Collaborators
	analyzer analysis.Analyzer
	board    leaderboard.Provider
	sessions session.Store

	// Configuration
	sessionCapacity int
	style           view.Style

	// State
	seed    []model.LeaderboardEntry
	stats   *statsCounter
	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAnalyzer sets the analyze client.
func WithAnalyzer(a analysis.Analyzer) Option {
	return func(s *Service) {
		s.analyzer = a
	}
}

// WithLeaderboard sets the leaderboard provider. Defaults to the demo board.
func WithLeaderboard(p leaderboard.Provider) Option {
	return func(s *Service) {
		if p != nil {
			s.board = p
		}
	}
}

// WithSessionCapacity bounds the number of live sessions; <= 0 is unbounded.
func WithSessionCapacity(n int) Option {
	return func(s *Service) {
		s.sessionCapacity = n
	}
}

// WithStyle sets the rendering preset used by Page.
func WithStyle(st view.Style) Option {
	return func(s *Service) {
		s.style = st
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		board:           leaderboard.NewDemoProvider(),
		sessionCapacity: 10_000,
		style:           view.Styled,
		stats:           &statsCounter{},
		logger:          nil, // replaced on Start
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the static seed, if any, and opens the session store.
func (s *Service) Start(ctx context.Context) error {
	const op = "service.start"
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	if s.analyzer == nil {
		return fmt.Errorf("%s: %w", op, ErrNoAnalyzer)
	}

	s.seed = []model.LeaderboardEntry{}
	policy := string(s.board.Policy())
	if s.board.Policy() == leaderboard.PolicyStatic {
		entries, err := s.board.Load(ctx)
		if err != nil {
			metrics.RecordLeaderboardLoad(policy, metrics.OutcomeFailed)
			return fmt.Errorf("%s: %w", op, err)
		}
		metrics.RecordLeaderboardLoad(policy, metrics.OutcomeOK)
		s.seed = entries
	}
	metrics.UpdateLeaderboardEntries(len(s.seed))

	seed := s.seed
	var store session.Store
	store = session.NewInMemoryStore(
		session.WithMaxSize(s.sessionCapacity),
		session.WithOnCreate(func(sess *session.Session) {
			sess.SetLeaderboard(seed)
		}),
		session.WithOnEvict(func(sess *session.Session) {
			metrics.RecordSessionEviction()
			metrics.UpdateActiveSessions(int(store.Size()))
			s.logger.Debug(context.Background(), "session evicted", logger.String("session", sess.ID()))
		}),
	)
	s.sessions = store
	s.started = true

	s.logger.Info(ctx, "service started",
		logger.String("leaderboard_policy", policy),
		logger.Int("seed_entries", len(s.seed)),
		logger.Int("session_capacity", s.sessionCapacity),
		logger.String("style", s.style.Name),
	)
	return nil
}

// Stop drops all sessions.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.sessions = nil
	s.started = false
	metrics.UpdateActiveSessions(0)
	s.logger.Info(context.Background(), "service stopped")
}

func (s *Service) store() (session.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.sessions, nil
}

func (s *Service) session(ctx context.Context, id string) (*session.Session, error) {
	store, err := s.store()
	if err != nil {
		return nil, err
	}
	sess, created := store.GetOrCreate(ctx, id)
	if created {
		metrics.UpdateActiveSessions(int(store.Size()))
	}
	return sess, nil
}

// Submit runs one analysis for the session.
//
// Blank input only raises the empty-URL notice. A failed call raises the
// generic failure notice and leaves the previous result in place. A
// successful call replaces the result and, for dynamic boards, refreshes
// the leaderboard; a failed refresh keeps the old board and is reported in
// Outcome.LeaderboardErr without failing the submission.
func (s *Service) Submit(ctx context.Context, sessionID, rawURL string) model.Outcome {
	return s.submit(ctx, sessionID, rawURL, true)
}

// Analyze is Submit for callers that report the outcome themselves, such as
// the JSON API. Failures leave no pending notice on the session.
func (s *Service) Analyze(ctx context.Context, sessionID, rawURL string) model.Outcome {
	return s.submit(ctx, sessionID, rawURL, false)
}

func (s *Service) submit(ctx context.Context, sessionID, rawURL string, raise bool) model.Outcome {
	const op = "service.submit"
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return model.Outcome{Notice: model.NoticeAnalyzeFailed, Err: fmt.Errorf("%s: %w", op, err)}
	}
	sess.SetInput(rawURL)

	if strings.TrimSpace(rawURL) == "" {
		metrics.RecordAnalyze(metrics.OutcomeEmptyURL)
		if raise {
			sess.SetNotice(model.NoticeEmptyURL)
		}
		return model.Outcome{Notice: model.NoticeEmptyURL, Err: fmt.Errorf("%s: %w", op, analysis.ErrEmptyURL)}
	}

	start := time.Now()
	result, err := s.analyzer.Analyze(ctx, rawURL)
	latencyMs := float64(time.Since(start).Microseconds()) / 1000
	if err != nil {
		notice := model.NoticeAnalyzeFailed
		outcome := metrics.OutcomeFailed
		if errors.Is(err, analysis.ErrEmptyURL) {
			notice, outcome = model.NoticeEmptyURL, metrics.OutcomeEmptyURL
		} else {
			metrics.RecordErrorLatency("analyze", "analyze_failed", latencyMs)
			s.logger.Error(ctx, "analysis failed",
				logger.String("session", sessionID),
				logger.String("url_host", analysis.URLHost(rawURL)),
				logger.Error(err),
			)
		}
		metrics.RecordAnalyze(outcome)
		if raise {
			sess.SetNotice(notice)
		}
		return model.Outcome{Notice: notice, Err: fmt.Errorf("%s: %w", op, err)}
	}

	sess.SetResult(result)
	sess.SetNotice(model.NoticeNone)
	s.stats.record(result.SimilarityScore)
	metrics.RecordAnalyze(metrics.OutcomeOK)
	metrics.RecordAnalyzeLatency(latencyMs)
	metrics.RecordSimilarityScore(result.SimilarityScore)

	out := model.Outcome{Result: &result}
	if s.board.Policy() == leaderboard.PolicyDynamic {
		out.LeaderboardErr = s.refreshLeaderboard(ctx, sess)
	}
	return out
}

// refreshLeaderboard replaces the session's board with a fresh fetch.
// On failure the previous board stays.
func (s *Service) refreshLeaderboard(ctx context.Context, sess *session.Session) error {
	policy := string(leaderboard.PolicyDynamic)
	entries, err := s.board.Load(ctx)
	if err != nil {
		metrics.RecordLeaderboardLoad(policy, metrics.OutcomeFailed)
		metrics.RecordErrorByType("leaderboard_fetch", "warning")
		s.logger.Warn(ctx, "leaderboard refresh failed, keeping previous board",
			logger.String("session", sess.ID()),
			logger.Error(err),
		)
		return err
	}
	metrics.RecordLeaderboardLoad(policy, metrics.OutcomeOK)
	metrics.UpdateLeaderboardEntries(len(entries))
	sess.SetLeaderboard(entries)
	s.logger.Debug(ctx, "leaderboard refreshed",
		logger.String("session", sess.ID()),
		logger.Int("entries", len(entries)),
		logger.Any("version", sess.LeaderboardVersion()),
	)
	return nil
}

// Snapshot returns the session state without consuming its notice.
func (s *Service) Snapshot(ctx context.Context, sessionID string) (model.Snapshot, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("service.snapshot: %w", err)
	}
	return sess.Snapshot(), nil
}

// Leaderboard returns the session's current board in display order.
func (s *Service) Leaderboard(ctx context.Context, sessionID string) ([]model.LeaderboardEntry, error) {
	snap, err := s.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return snap.Leaderboard, nil
}

// Page is everything a front-end draws for one session.
type Page struct {
	Style       view.Style
	URL         string
	Notice      model.Notice
	Result      view.ResultView
	Leaderboard []view.LeaderboardRow
	Stats       view.StatsView
	Policy      leaderboard.Policy
}

// Page renders the session and consumes its pending notice, so each notice
// is shown once.
func (s *Service) Page(ctx context.Context, sessionID string) (Page, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return Page{}, fmt.Errorf("service.page: %w", err)
	}
	notice := sess.TakeNotice()
	snap := sess.Snapshot()
	return Page{
		Style:       s.style,
		URL:         snap.URL,
		Notice:      notice,
		Result:      view.RenderResult(snap.Result, s.style),
		Leaderboard: view.RenderLeaderboard(snap.Leaderboard),
		Stats:       view.RenderStats(s.Stats()),
		Policy:      s.board.Policy(),
	}, nil
}

// Style returns the rendering preset.
func (s *Service) Style() view.Style { return s.style }

// Stats returns process-wide analysis stats.
func (s *Service) Stats() model.Stats { return s.stats.snapshot() }

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.stats.snapshot()
	stats := map[string]interface{}{
		"started":            s.started,
		"style":              s.style.Name,
		"leaderboard_policy": string(s.board.Policy()),
		"session_capacity":   s.sessionCapacity,
		"total_analyses":     st.Total,
		"average_score":      st.Average,
		"max_score":          st.Max,
	}
	if s.started {
		size := s.sessions.Size()
		stats["active_sessions"] = size
		metrics.UpdateActiveSessions(int(size))
	}
	return stats
}

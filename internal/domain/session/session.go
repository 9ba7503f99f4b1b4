// Package session holds per-visitor UI state.
//
// Each Session owns its cells (input, result, leaderboard, notice) and is
// the only writer to them. Nothing outside a session mutates its state.
package session

import (
	"github.com/okian/pressdetective/internal/domain/model"
	"github.com/okian/pressdetective/internal/domain/state"
)

// Session is one visitor's view state.
type Session struct {
	id string

	input       *state.Cell[string]
	result      *state.Cell[*model.AnalysisResult]
	leaderboard *state.Cell[[]model.LeaderboardEntry]
	notice      *state.Cell[model.Notice]
}

// New creates an empty session: no result, empty leaderboard, no notice.
func New(id string) *Session {
	return &Session{
		id:          id,
		input:       state.NewCell("", nil),
		result:      state.NewCell[*model.AnalysisResult](nil, cloneResult),
		leaderboard: state.NewCell([]model.LeaderboardEntry{}, model.CloneEntries),
		notice:      state.NewCell(model.NoticeNone, nil),
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// SetInput records the URL the visitor typed.
func (s *Session) SetInput(url string) { s.input.Set(url) }

// SetResult replaces the current result.
func (s *Session) SetResult(r model.AnalysisResult) { s.result.Set(&r) }

// SetLeaderboard replaces the whole leaderboard.
func (s *Session) SetLeaderboard(entries []model.LeaderboardEntry) {
	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}
	s.leaderboard.Set(entries)
}

// SetNotice records the notice to show next; NoticeNone clears it.
func (s *Session) SetNotice(n model.Notice) { s.notice.Set(n) }

// TakeNotice returns the pending notice and clears it, so every notice is
// shown exactly once.
func (s *Session) TakeNotice() model.Notice {
	var taken model.Notice
	s.notice.Update(func(n model.Notice) model.Notice {
		taken = n
		return model.NoticeNone
	})
	return taken
}

// LeaderboardVersion counts leaderboard replacements.
func (s *Session) LeaderboardVersion() uint64 { return s.leaderboard.Version() }

// Snapshot copies the current state.
func (s *Session) Snapshot() model.Snapshot {
	return model.Snapshot{
		URL:         s.input.Get(),
		Result:      s.result.Get(),
		Leaderboard: s.leaderboard.Get(),
		Notice:      s.notice.Get(),
	}
}

func cloneResult(r *model.AnalysisResult) *model.AnalysisResult {
	if r == nil {
		return nil
	}
	c := *r
	if r.Threshold != nil {
		t := *r.Threshold
		c.Threshold = &t
	}
	return &c
}

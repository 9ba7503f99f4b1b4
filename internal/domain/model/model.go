// Package model contains domain models passed between layers.
package model

// AnalysisRequest is the body sent to the external analyze endpoint.
type AnalysisRequest struct {
	URL string `json:"url"`
}

// AnalysisResult is what the external analyze endpoint returns. It is
// immutable once received; a new analysis replaces it wholesale.
type AnalysisResult struct {
	Title           string  `json:"title"`
	SimilarityScore float64 `json:"similarity_score"` // 0..1
	Label           string  `json:"label"`
	Summary         string  `json:"summary"`

	// Optional fields some backends include.
	Publisher string   `json:"publisher,omitempty"`
	Threshold *float64 `json:"threshold,omitempty"`
}

// LeaderboardEntry is one publisher row. Rank is implied by position.
type LeaderboardEntry struct {
	Publisher string  `json:"publisher"`
	AvgScore  float64 `json:"avg_score"` // 0..1
}

// Notice is a user-visible message raised by a submission.
type Notice string

// Notices shown to the user. There is deliberately one generic failure
// notice; causes are only logged.
const (
	NoticeNone          Notice = ""
	NoticeEmptyURL      Notice = "뉴스 URL을 입력해주세요!"
	NoticeAnalyzeFailed Notice = "분석 중 오류가 발생했습니다."
)

// Outcome reports what one submission did.
type Outcome struct {
	// Result is the new result on success, nil otherwise.
	Result *AnalysisResult
	// Notice is non-empty when the user must be told something.
	Notice Notice
	// Err carries the cause for logs and API clients; never rendered.
	Err error
	// LeaderboardErr is set when a dynamic leaderboard refresh failed.
	LeaderboardErr error
}

// OK reports whether the submission produced a result.
func (o Outcome) OK() bool { return o.Result != nil && o.Err == nil }

// Snapshot is a read-only copy of one session's state.
type Snapshot struct {
	URL         string
	Result      *AnalysisResult
	Leaderboard []LeaderboardEntry
	Notice      Notice
}

// Stats aggregates successful analyses across the process.
type Stats struct {
	Total   int
	Average float64
	Max     float64
}

// CloneEntries copies a leaderboard so callers cannot alias the owner's slice.
func CloneEntries(in []LeaderboardEntry) []LeaderboardEntry {
	if in == nil {
		return nil
	}
	out := make([]LeaderboardEntry, len(in))
	copy(out, in)
	return out
}

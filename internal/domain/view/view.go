// Package view turns domain state into display-ready values shared by the
// web page, the JSON API and the terminal UI. Nothing here does I/O.
package view

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/okian/pressdetective/internal/domain/model"
)

// Style is a rendering preset.
type Style struct {
	Name string
	// ScorePrecision is the number of decimals for the result score.
	ScorePrecision int
}

var (
	// Styled is the full preset: 4 decimal scores.
	Styled = Style{Name: "styled", ScorePrecision: 4}
	// Minimal is the plain preset: 3 decimal scores.
	Minimal = Style{Name: "minimal", ScorePrecision: 3}
)

// StyleFor maps a variant name to its preset. Unknown names get Styled.
func StyleFor(variant string) Style {
	if strings.EqualFold(strings.TrimSpace(variant), Minimal.Name) {
		return Minimal
	}
	return Styled
}

// Leaderboard tiers.
const (
	TierHigh = "high"
	TierMid  = "mid"
	TierLow  = "low"
)

const (
	tierHighMin = 0.85
	tierMidMin  = 0.75
)

// OnboardingHint is shown instead of a result before the first analysis.
const OnboardingHint = "뉴스 기사 URL을 입력한 뒤 [분석] 버튼을 누르면 기사 제목과 본문 간의 유사도를 분석하고 요약을 제공합니다."

// ResultView is a display-ready analysis result.
type ResultView struct {
	Empty bool
	Hint  string

	Title     string
	Score     string
	Label     string
	Summary   string
	Publisher string

	// Similar and Diff are gauge fractions in [0,1] summing to 1.
	Similar float64
	Diff    float64
	// Percent and DiffPercent are the gauge legend, summing to 100.
	Percent     int
	DiffPercent int
}

// RenderResult formats r for display. A nil result yields the onboarding hint.
func RenderResult(r *model.AnalysisResult, style Style) ResultView {
	if r == nil {
		return ResultView{Empty: true, Hint: OnboardingHint}
	}
	similar := clamp01(r.SimilarityScore)
	percent := int(math.Round(similar * 100))
	return ResultView{
		Title:       r.Title,
		Score:       FormatScore(r.SimilarityScore, style.ScorePrecision),
		Label:       r.Label,
		Summary:     r.Summary,
		Publisher:   r.Publisher,
		Similar:     similar,
		Diff:        1 - similar,
		Percent:     percent,
		DiffPercent: 100 - percent,
	}
}

// FormatScore prints v with a fixed number of decimals.
func FormatScore(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return fmt.Sprintf("%.*f", precision, v)
}

// LeaderboardRow is one display-ready leaderboard line.
type LeaderboardRow struct {
	Rank      int
	Icon      string
	Publisher string
	Score     string
	Tier      string
	// TierLabel is Tier for display, e.g. "High".
	TierLabel string
	// Percent is the average score as a whole percentage for bar widths.
	Percent int
}

var medals = [...]string{"🥇", "🥈", "🥉"}

var tierTitle = cases.Title(language.English)

// RenderLeaderboard keeps input order; rank is the position.
func RenderLeaderboard(entries []model.LeaderboardEntry) []LeaderboardRow {
	rows := make([]LeaderboardRow, 0, len(entries))
	for i, e := range entries {
		tier := TierFor(e.AvgScore)
		rows = append(rows, LeaderboardRow{
			Rank:      i + 1,
			Icon:      RankIcon(i + 1),
			Publisher: e.Publisher,
			Score:     FormatScore(e.AvgScore, 3),
			Tier:      tier,
			TierLabel: tierTitle.String(tier),
			Percent:   int(math.Round(clamp01(e.AvgScore) * 100)),
		})
	}
	return rows
}

// RankIcon returns a medal for the podium and "N." otherwise.
func RankIcon(rank int) string {
	if rank >= 1 && rank <= len(medals) {
		return medals[rank-1]
	}
	return fmt.Sprintf("%d.", rank)
}

// TierFor buckets an average score.
func TierFor(score float64) string {
	switch {
	case score >= tierHighMin:
		return TierHigh
	case score >= tierMidMin:
		return TierMid
	default:
		return TierLow
	}
}

// StatsView holds the three stats widgets.
type StatsView struct {
	Total   string
	Average string
	Max     string
}

var counterPrinter = message.NewPrinter(language.Korean)

// RenderStats formats process-wide stats. Averages and maxima use 3 decimals
// and show "-" until the first successful analysis.
func RenderStats(s model.Stats) StatsView {
	v := StatsView{
		Total:   counterPrinter.Sprintf("%d", s.Total),
		Average: "-",
		Max:     "-",
	}
	if s.Total > 0 {
		v.Average = FormatScore(s.Average, 3)
		v.Max = FormatScore(s.Max, 3)
	}
	return v
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

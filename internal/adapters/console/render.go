package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	service "github.com/okian/pressdetective/internal/app"
	"github.com/okian/pressdetective/internal/domain/view"
)

const (
	gaugeWidth   = 20
	minNameWidth = 12
)

// Render draws a page as terminal text.
func Render(p service.Page, th Theme) string {
	var b strings.Builder

	b.WriteString(th.Title.Render("🧠 언론탐정단"))
	b.WriteString("\n")

	if p.Notice != "" {
		b.WriteString(th.Notice.Render("! " + string(p.Notice)))
		b.WriteString("\n")
	}

	b.WriteString(renderStats(p.Stats, th))
	b.WriteString("\n")

	b.WriteString(th.Section.Render("📄 분석 결과"))
	b.WriteString("\n")
	b.WriteString(renderResult(p.Result, th))

	b.WriteString(th.Section.Render("🏆 언론사 리더보드"))
	b.WriteString("\n")
	b.WriteString(renderLeaderboard(p.Leaderboard, th))
	return b.String()
}

func renderStats(s view.StatsView, th Theme) string {
	cell := func(label, value string) string {
		return th.StatLabel.Render(label+" ") + th.StatValue.Render(value)
	}
	return strings.Join([]string{
		cell("총 분석 수", s.Total),
		cell("평균 유사도", s.Average),
		cell("최고 유사도", s.Max),
	}, "   ")
}

func renderResult(r view.ResultView, th Theme) string {
	if r.Empty {
		return th.Hint.Render("👋 "+r.Hint) + "\n"
	}
	var b strings.Builder
	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", th.Field.Render(label+":"), value)
	}
	field("제목", r.Title)
	field("유사도 점수", th.Score.Render(r.Score)+"  "+Gauge(r.Similar, gaugeWidth, th)+"  "+Legend(r))
	field("판정", r.Label)
	if r.Publisher != "" {
		field("언론사", r.Publisher)
	}
	field("요약", r.Summary)
	return b.String()
}

// Gauge draws the similar/diff split as a horizontal bar.
func Gauge(similar float64, width int, th Theme) string {
	if width <= 0 {
		return ""
	}
	on := int(similar*float64(width) + 0.5)
	if on < 0 {
		on = 0
	}
	if on > width {
		on = width
	}
	return th.GaugeOn.Render(strings.Repeat("█", on)) + th.GaugeOff.Render(strings.Repeat("░", width-on))
}

// Legend spells out the gauge split, e.g. "유사 50% · 차이 50%".
func Legend(r view.ResultView) string {
	return fmt.Sprintf("유사 %d%% · 차이 %d%%", r.Percent, r.DiffPercent)
}

func renderLeaderboard(rows []view.LeaderboardRow, th Theme) string {
	if len(rows) == 0 {
		return th.Hint.Render("아직 리더보드 데이터가 없습니다.") + "\n"
	}
	iconWidth, nameWidth, tierWidth := 0, minNameWidth, 0
	for _, r := range rows {
		iconWidth = max(iconWidth, runewidth.StringWidth(r.Icon))
		nameWidth = max(nameWidth, runewidth.StringWidth(r.Publisher))
		tierWidth = max(tierWidth, runewidth.StringWidth(r.TierLabel))
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(PadRight(r.Icon, iconWidth))
		b.WriteString(" ")
		b.WriteString(PadRight(r.Publisher, nameWidth))
		b.WriteString(" ")
		b.WriteString(th.Help.Render(PadRight(r.TierLabel, tierWidth)))
		b.WriteString(" ")
		b.WriteString(tierStyle(r.Tier, th).Render(r.Score))
		b.WriteString("\n")
	}
	return b.String()
}

func tierStyle(tier string, th Theme) lipgloss.Style {
	switch tier {
	case view.TierHigh:
		return th.TierHigh
	case view.TierMid:
		return th.TierMid
	default:
		return th.TierLow
	}
}

// PadRight pads s with spaces to width terminal cells. Hangul and emoji
// count as two cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

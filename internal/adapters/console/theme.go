package console

import "github.com/charmbracelet/lipgloss"

// Theme holds the console styles.
type Theme struct {
	Title     lipgloss.Style
	Section   lipgloss.Style
	Notice    lipgloss.Style
	Hint      lipgloss.Style
	Field     lipgloss.Style
	Score     lipgloss.Style
	GaugeOn   lipgloss.Style
	GaugeOff  lipgloss.Style
	TierHigh  lipgloss.Style
	TierMid   lipgloss.Style
	TierLow   lipgloss.Style
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Help      lipgloss.Style
}

// DefaultTheme mirrors the page colors.
func DefaultTheme() Theme {
	blue := lipgloss.Color("#3B82F6")
	gray := lipgloss.Color("#6B7280")
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1D4ED8")),
		Section:   lipgloss.NewStyle().Bold(true).MarginTop(1),
		Notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true),
		Hint:      lipgloss.NewStyle().Foreground(gray),
		Field:     lipgloss.NewStyle().Bold(true),
		Score:     lipgloss.NewStyle().Foreground(blue).Bold(true),
		GaugeOn:   lipgloss.NewStyle().Foreground(blue),
		GaugeOff:  lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB")),
		TierHigh:  lipgloss.NewStyle().Foreground(blue).Bold(true),
		TierMid:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5563")).Bold(true),
		TierLow:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		StatLabel: lipgloss.NewStyle().Foreground(gray),
		StatValue: lipgloss.NewStyle().Foreground(blue).Bold(true),
		Help:      lipgloss.NewStyle().Foreground(gray).Faint(true),
	}
}

// PlainTheme renders without any escape codes.
func PlainTheme() Theme {
	p := lipgloss.NewStyle()
	return Theme{
		Title: p, Section: p, Notice: p, Hint: p, Field: p, Score: p,
		GaugeOn: p, GaugeOff: p, TierHigh: p, TierMid: p, TierLow: p,
		StatLabel: p, StatValue: p, Help: p,
	}
}

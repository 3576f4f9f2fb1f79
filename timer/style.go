package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 60
)

type styles struct {
	base     lipgloss.Style
	title    lipgloss.Style
	clock    lipgloss.Style
	hint     lipgloss.Style
	selected lipgloss.Style
	running  lipgloss.Style
	stopped  lipgloss.Style
	idle     lipgloss.Style
	err      lipgloss.Style
}

func newStyles(dark bool) styles {
	text := lipgloss.Color("#1e1e2e")
	muted := lipgloss.Color("#6c7086")
	accent := lipgloss.Color("#1e66f5")

	if dark {
		text = lipgloss.Color("#cdd6f4")
		muted = lipgloss.Color("#a6adc8")
		accent = lipgloss.Color("#74c7ec")
	}

	return styles{
		base:     lipgloss.NewStyle().Padding(1, padding).MaxWidth(maxWidth),
		title:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		clock:    lipgloss.NewStyle().Foreground(text).Bold(true),
		hint:     lipgloss.NewStyle().Foreground(muted),
		selected: lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
		running:  lipgloss.NewStyle().Foreground(lipgloss.Color("#40a02b")).Bold(true),
		stopped:  lipgloss.NewStyle().Foreground(lipgloss.Color("#df8e1d")).Bold(true),
		idle:     lipgloss.NewStyle().Foreground(muted),
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("#d20f39")),
	}
}

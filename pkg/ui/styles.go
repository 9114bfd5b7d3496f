package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	NameColor    = lipgloss.AdaptiveColor{Light: "#0B7A75", Dark: "#3FD1CB"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#73D216"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF5F56"}
)

// Styles groups the lipgloss styles used by the table renderer. They are
// bound to one writer so color decisions do not leak between outputs.
type Styles struct {
	Title   lipgloss.Style
	Name    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates styles for w, forcing plain output when color is false
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Title: r.NewStyle().
			Foreground(HeadingColor).
			Bold(true),
		Name: r.NewStyle().
			Foreground(NameColor),
		Muted: r.NewStyle().
			Foreground(MutedColor),
		Success: r.NewStyle().
			Foreground(SuccessColor).
			Bold(true),
		Error: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
	}
}

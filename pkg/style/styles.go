package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of styles bound to one renderer
type Styles struct {
	Command lipgloss.Style
	Action  lipgloss.Style
	Heading lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds styles for the given renderer
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Command: r.NewStyle().Foreground(CommandColor),
		Action:  r.NewStyle().Foreground(ActionColor),
		Heading: r.NewStyle().Foreground(HeadingColor).Bold(true),
		Success: r.NewStyle().Foreground(HeadingColor).Bold(true),
		Warning: r.NewStyle().Foreground(WarningColor).Bold(true),
		Error:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		Muted:   r.NewStyle().Foreground(MutedColor),
	}
}

// Indicators
const (
	SuccessIcon = "✓"
	FailureIcon = "✗"
	WarningIcon = "!"
	PendingIcon = "○"
	DryRunTag   = "[dry run]"
)

package output

import "github.com/charmbracelet/lipgloss"

// BannerWidth is the width of horizontal rules.
const BannerWidth = 50

// Status selects a line marker.
type Status string

const (
	StatusRenamed Status = "renamed"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
	StatusWarn    Status = "warn"
)

// Markers printed in front of per-entry lines.
const (
	MarkRenamed = "✓"
	MarkSkipped = "⊘"
	MarkFailed  = "✗"
	MarkWarn    = "!"
)

// Styles holds lipgloss styles bound to one output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Path    lipgloss.Style
}

// NewStyles builds the palette on r, so color follows r's profile.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: r.NewStyle().Bold(true),
		Bold:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("9")),
		Path:    r.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// Marker returns the styled marker for a status.
func (s *Styles) Marker(status Status) string {
	switch status {
	case StatusRenamed:
		return s.Success.Render(MarkRenamed)
	case StatusSkipped:
		return s.Muted.Render(MarkSkipped)
	case StatusFailed:
		return s.Error.Render(MarkFailed)
	default:
		return s.Warning.Render(MarkWarn)
	}
}

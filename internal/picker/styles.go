package picker

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for the session listing.
type Styles struct {
	Header lipgloss.Style
	Index  lipgloss.Style
	Time   lipgloss.Style
	Label  lipgloss.Style
	Error  lipgloss.Style
	Saved  lipgloss.Style
}

// NewStyles builds styles bound to w. Color is dropped automatically when w
// is not a terminal.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true),
		Index: r.NewStyle().
			Foreground(lipgloss.Color("45")).
			Bold(true),
		Time: r.NewStyle().
			Foreground(lipgloss.Color("231")),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("245")),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("196")),
		Saved: r.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
	}
}

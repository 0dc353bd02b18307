package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	ErrStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// statusWidth is the widest status word, so colored cells stay aligned in a
// tabwriter (every style adds an escape sequence of the same length).
const statusWidth = 7

// StatusCell pads a status word and colors it when color is true.
// Unknown statuses are returned padded but unstyled.
func StatusCell(status string, color bool) string {
	cell := fmt.Sprintf("%-*s", statusWidth, status)
	if !color {
		return cell
	}
	switch status {
	case "ok":
		return okStyle.Render(cell)
	case "skipped":
		return skippedStyle.Render(cell)
	case "warning":
		return warnStyle.Render(cell)
	default:
		return cell
	}
}

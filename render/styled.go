package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/postman/postman"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")

	labelStyle = lipgloss.NewStyle().Foreground(colorMuted).Width(8)
	valueStyle = lipgloss.NewStyle()
	totalStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
)

// StyledSummary writes the Summary rows inside a rounded lipgloss box, with
// the total weight highlighted. Colors follow the terminal profile detected
// on stdout.
func StyledSummary(w io.Writer, res *postman.Result) error {
	rows := make([]string, 0, 8)
	for _, l := range summaryLines(res) {
		value := valueStyle.Render(l[1])
		if l[0] == "weight" {
			value = totalStyle.Render(l[1])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(l[0]), value))
	}
	_, err := fmt.Fprintln(w, boxStyle.Render(strings.Join(rows, "\n")))

	return err
}

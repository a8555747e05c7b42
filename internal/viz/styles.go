package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	foundStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	keyHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true)

	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// printer groups digits so periods in the trillions stay readable.
var printer = message.NewPrinter(message.MatchLanguage("en"))

func grouped(v int64) string {
	return printer.Sprintf("%d", v)
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

// Separator draws a muted rule of the given width.
func Separator(width int) string {
	if width < 7 {
		return subtleStyle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return subtleStyle.Render(left + " ◆ " + right)
}

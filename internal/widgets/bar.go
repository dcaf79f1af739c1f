package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar renders text as a single styled line exactly width cells wide.
func Bar(style lipgloss.Style, text string, width int) string {
	width = max(1, width)
	line := PadRight(Truncate(strings.ReplaceAll(text, "\n", " "), width, ""), width)
	return style.Width(width).MaxWidth(width).Render(line)
}

// ClipLines keeps at most n lines of s.
func ClipLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

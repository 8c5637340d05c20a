package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames lines in the current theme's border.
func Panel(lines []string) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// PageBar renders a bar of width cells showing page (0-based) out of pages,
// followed by "page n/m".
func PageBar(page, pages, width int) string {
	if pages <= 0 {
		pages = 1
	}
	if width < 5 {
		width = 5
	}
	page = max(0, min(page, pages-1))
	filled := (page + 1) * width / pages
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s page %d/%d", bar, page+1, pages)
}

// Truncate cuts s to at most n display cells, ending with "...".
func Truncate(s string, n int) string {
	if n <= 3 || lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+3 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

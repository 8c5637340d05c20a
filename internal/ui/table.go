package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders a static grid. maxWidths caps each column (0 means no
// cap); cells longer than the cap are truncated.
func Table(headers []string, rows [][]string, maxWidths []int) string {
	t := Current()
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := lipgloss.Width(fit(cell, i, maxWidths)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	sep := t.Muted.Render(" │ ")
	for i, h := range headers {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(t.Header.Width(widths[i]).Render(h))
	}
	sb.WriteString("\n")

	total := 0
	for _, w := range widths {
		total += w
	}
	total += 3 * (len(widths) - 1)
	sb.WriteString(t.Muted.Render(strings.Repeat("─", max(total, 0))))

	for _, row := range rows {
		sb.WriteString("\n")
		for i := range widths {
			if i > 0 {
				sb.WriteString(sep)
			}
			cell := ""
			if i < len(row) {
				cell = fit(row[i], i, maxWidths)
			}
			sb.WriteString(t.Cell.Width(widths[i]).Render(cell))
		}
	}
	return sb.String()
}

func fit(cell string, i int, maxWidths []int) string {
	if i < len(maxWidths) && maxWidths[i] > 0 {
		return Truncate(cell, maxWidths[i])
	}
	return cell
}

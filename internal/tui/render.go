package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/postview/internal/model"
	"github.com/Makepad-fr/postview/internal/ui"
	"github.com/Makepad-fr/postview/internal/view"
)

const (
	heading   = "Posts"
	pickWidth = 3
)

func tableStyles() table.Styles {
	t := ui.Current()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.BorderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = t.Selected
	return s
}

// tableColumns lays out the selection box plus every view column. The body
// column absorbs whatever width is left.
func (m Model) tableColumns() []table.Column {
	fixed := pickWidth
	for _, c := range m.cols {
		if c.Title != "Body" {
			fixed += c.Width
		}
	}
	// two cells of padding per column plus the outer frame
	bodyWidth := max(20, m.width-fixed-2*(len(m.cols)+1)-4)

	out := make([]table.Column, 0, len(m.cols)+1)
	out = append(out, table.Column{Title: "", Width: pickWidth})
	for i, c := range m.cols {
		title := c.Title
		if i == m.sortCol {
			if m.sortDesc {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		w := c.Width
		if c.Title == "Body" {
			w = bodyWidth
		}
		out = append(out, table.Column{Title: title, Width: w})
	}
	return out
}

func (m Model) tableRows() []table.Row {
	t := ui.Current()
	cells := view.Rows(m.visible, m.cols)
	rows := make([]table.Row, 0, len(cells))
	for i, c := range cells {
		box := t.BoxUnchecked
		if m.picked[m.visible[i].ID] {
			box = t.BoxChecked
		}
		rows = append(rows, append(table.Row{box}, c...))
	}
	return rows
}

func (m Model) View() string {
	if m.detail != nil {
		return m.panel(m.detailView(*m.detail))
	}

	t := ui.Current()
	var sb strings.Builder

	sb.WriteString(t.Title.Render(heading))
	sb.WriteString("\n")
	if err := m.state.Err(); err != nil {
		sb.WriteString(t.Error.Render(err.Error()))
		sb.WriteString("\n")
	} else if !m.state.IsLoaded() {
		sb.WriteString(t.Muted.Render("Loading..."))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.filterBar())
	sb.WriteString("\n\n")

	sb.WriteString(m.table.View())
	sb.WriteString("\n")

	if len(m.visible) == 0 && m.state.IsLoaded() {
		sb.WriteString(t.Muted.Render("There are no records to display"))
		sb.WriteString("\n")
	}

	sb.WriteString(m.footer())
	sb.WriteString("\n")
	if m.statusMsg != "" {
		sb.WriteString(t.Accent.Render(m.statusMsg))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return m.panel(sb.String())
}

func (m Model) filterBar() string {
	t := ui.Current()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	if m.filterFocused {
		box = box.BorderForeground(lipgloss.Color("12"))
	}
	selector := box.Render("▾ " + view.SelectorLabel(m.state.Selected()))
	return lipgloss.JoinHorizontal(lipgloss.Center, box.Render(m.input.View()), "  ", selector)
}

func (m Model) footer() string {
	t := ui.Current()
	filtered := len(m.state.Filtered())
	parts := []string{
		m.pager.View(),
		fmt.Sprintf("%d of %d rows", filtered, m.state.Len()),
	}
	if n := len(m.picked); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if m.source != "" {
		parts = append(parts, m.source)
	}
	return t.Muted.Render(strings.Join(parts, "  •  "))
}

func (m Model) detailView(r model.Record) string {
	t := ui.Current()
	md := fmt.Sprintf("# %s\n\n%s\n", r.Title, r.Body)
	body := md
	if out, err := renderMarkdown(md, m.width-8); err == nil {
		body = out
	}
	hint := t.Muted.Render(fmt.Sprintf("#%d  •  esc back  •  e edit  •  d delete", r.ID))
	return body + "\n" + hint
}

func renderMarkdown(md string, width int) (string, error) {
	style := "dark"
	if ui.Current().Name == "mono" {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func (m Model) panel(inner string) string {
	t := ui.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

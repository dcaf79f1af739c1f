package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pagebuilder/internal/layout"
	"github.com/jask/pagebuilder/internal/widgets"
)

const minColumnWidth = 8

// renderStage draws the document top to bottom, one bordered block per row
// with its columns side by side.
func renderStage(e layout.Editor, width int) string {
	width = max(width, minColumnWidth+4)
	if len(e.Rows) == 0 {
		return placeholderStyle.Render("Empty page. Press r to add a row.")
	}
	blocks := make([]string, 0, len(e.Rows))
	for _, r := range e.Rows {
		blocks = append(blocks, renderRow(r, e.Selection, width))
	}
	return strings.Join(blocks, "\n")
}

func renderRow(r layout.Row, sel layout.Selection, width int) string {
	inner := width - 2
	style := rowStyle.Width(inner)
	if sel.RowSelected(r.ID) {
		style = style.BorderForeground(colorSelect)
	} else if sel.RowID == r.ID {
		style = style.BorderForeground(colorBorder)
	}
	if len(r.Columns) == 0 {
		return style.Render(placeholderStyle.Render("empty row"))
	}

	cols := visibleColumns(r, sel, inner)
	n := len(cols)
	colWidth := inner / n
	cells := make([]string, 0, n)
	for i, c := range cols {
		w := colWidth
		if i == n-1 {
			// the last column takes the remainder so the row stays flush
			w = inner - colWidth*(n-1)
		}
		cells = append(cells, renderColumn(c, sel.ColumnSelected(c.ID), w))
	}
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// visibleColumns returns the columns that fit in width at minColumnWidth
// each, scrolled so the selected column stays on screen.
func visibleColumns(r layout.Row, sel layout.Selection, width int) []layout.Column {
	fit := max(1, width/minColumnWidth)
	if len(r.Columns) <= fit {
		return r.Columns
	}
	start := 0
	if sel.RowID == r.ID {
		if i := layout.FindColumn(r, sel.Column.ID); i >= fit {
			start = i - fit + 1
		}
	}
	return r.Columns[start : start+fit]
}

// renderColumn draws one column in a box width cells wide, borders included.
func renderColumn(c layout.Column, selected bool, width int) string {
	style := columnStyle.Width(width - 2)
	if selected {
		style = style.BorderForeground(colorSelect)
	}
	body := width - 4
	switch content := c.Content().(type) {
	case layout.ImageContent:
		return style.Render(renderImage(content, body))
	case layout.TextContent:
		if strings.TrimSpace(content.Text) == "" {
			return style.Render(placeholderStyle.Render("empty text"))
		}
		return style.Align(lipgloss.Left).Render(
			lipgloss.NewStyle().Width(body).Align(alignPosition(content.Align)).Render(content.Text),
		)
	}
	return style.Render("")
}

func renderImage(img layout.ImageContent, width int) string {
	if img.URL == "" {
		return placeholderStyle.Render(widgets.Truncate("▢ no image", width, "…"))
	}
	label := img.Alt
	if label == "" {
		label = "image"
	}
	return strings.Join([]string{
		"▣ " + widgets.Truncate(label, max(1, width-2), "…"),
		mutedStyle.Render(widgets.Truncate(img.URL, width, "…")),
	}, "\n")
}

func alignPosition(a layout.TextAlign) lipgloss.Position {
	switch a {
	case layout.AlignCenter:
		return lipgloss.Center
	case layout.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

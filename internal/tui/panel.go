package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pagebuilder/internal/layout"
	"github.com/jask/pagebuilder/internal/widgets"
)

// renderPanel draws the property panel for the current selection: Page
// always, Row once a row is selected, Column and its Text or Image section
// once a column is selected.
func (a *App) renderPanel(width int) string {
	sel := a.editor.Selection
	sections := []string{
		widgets.Pane{Title: "Page", Content: a.action(cmdAddRow, "Add row")}.Render(width),
	}
	if sel.State() == layout.SelectedNone {
		return strings.Join(sections, "\n")
	}
	sections = append(sections,
		widgets.Pane{Title: "Row", Content: a.action(cmdAddColumn, "Add column"), Selected: sel.State() == layout.SelectedRow}.Render(width))
	if sel.State() != layout.SelectedColumn {
		return strings.Join(sections, "\n")
	}

	col := sel.Column
	contents := labelStyle.Render("Contents") + "\n" + lipgloss.JoinHorizontal(lipgloss.Top,
		a.option(cmdContentText, "Text", col.ContentType == layout.ContentText), " ",
		a.option(cmdContentImage, "Image", col.ContentType == layout.ContentImage),
	)
	sections = append(sections, widgets.Pane{Title: "Column", Content: contents, Selected: true}.Render(width))

	switch col.ContentType {
	case layout.ContentText:
		alignment := labelStyle.Render("Alignment") + "\n" + lipgloss.JoinHorizontal(lipgloss.Top,
			a.option(cmdAlignLeft, "Left", col.TextAlign == layout.AlignLeft), " ",
			a.option(cmdAlignCenter, "Center", col.TextAlign == layout.AlignCenter), " ",
			a.option(cmdAlignRight, "Right", col.TextAlign == layout.AlignRight),
		)
		body := alignment + "\n" + labelStyle.Render("Text "+a.hint(cmdEditText)) + "\n" + a.textArea.View()
		sections = append(sections, widgets.Pane{Title: "Text", Content: body, Focused: a.focus == focusText}.Render(width))
	case layout.ContentImage:
		body := strings.Join([]string{
			labelStyle.Render("URL " + a.hint(cmdEditImageURL)),
			a.urlInput.View(),
			labelStyle.Render("Alt " + a.hint(cmdEditImageAlt)),
			a.altInput.View(),
		}, "\n")
		focused := a.focus == focusImageURL || a.focus == focusImageAlt
		sections = append(sections, widgets.Pane{Title: "Image", Content: body, Focused: focused}.Render(width))
	}
	return strings.Join(sections, "\n")
}

func (a *App) action(id, label string) string {
	return keyStyle.Render(a.hint(id)) + " " + label
}

func (a *App) option(id, label string, active bool) string {
	text := label
	if h := a.hint(id); h != "" {
		text = h + " " + label
	}
	if active {
		return activeOptionStyle.Render(text)
	}
	return optionStyle.Render(text)
}

func (a *App) hint(id string) string {
	k := a.keys.KeysFor(id)
	if k == "" {
		return ""
	}
	return "[" + k + "]"
}

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pagebuilder/internal/layout"
)

func defaultCommands() []Command {
	return []Command{
		{ID: cmdQuit, Name: "Quit", Description: "leave the editor", Palette: true, Execute: (*App).quit},
		{ID: cmdAddRow, Name: "Add row", Description: "insert a row after the selected row", Palette: true, Execute: (*App).addRow},
		{ID: cmdAddColumn, Name: "Add column", Description: "insert a column after the selected column", Palette: true, Execute: (*App).addColumn, Disabled: needRow},
		{ID: cmdPrevRow, Name: "Previous row", Execute: func(a *App) tea.Cmd { return a.move(a.editor.MoveRow(-1)) }},
		{ID: cmdNextRow, Name: "Next row", Execute: func(a *App) tea.Cmd { return a.move(a.editor.MoveRow(1)) }},
		{ID: cmdPrevColumn, Name: "Previous column", Execute: func(a *App) tea.Cmd { return a.move(a.editor.MoveColumn(-1)) }},
		{ID: cmdNextColumn, Name: "Next column", Execute: func(a *App) tea.Cmd { return a.move(a.editor.MoveColumn(1)) }},
		{ID: cmdSelectRow, Name: "Select row", Execute: func(a *App) tea.Cmd { return a.move(a.editor.SelectParent()) }},
		{ID: cmdContentText, Name: "Text", Description: "show text in the column", Palette: true, Disabled: needColumn,
			Execute: func(a *App) tea.Cmd { return a.edit(a.editor.Selection.Column.WithType(layout.ContentText)) }},
		{ID: cmdContentImage, Name: "Image", Description: "show an image in the column", Palette: true, Disabled: needColumn,
			Execute: func(a *App) tea.Cmd { return a.edit(a.editor.Selection.Column.WithType(layout.ContentImage)) }},
		{ID: cmdAlignLeft, Name: "Align left", Description: "text alignment", Palette: true, Disabled: needTextColumn,
			Execute: func(a *App) tea.Cmd { return a.edit(a.editor.Selection.Column.WithAlign(layout.AlignLeft)) }},
		{ID: cmdAlignCenter, Name: "Align center", Description: "text alignment", Palette: true, Disabled: needTextColumn,
			Execute: func(a *App) tea.Cmd { return a.edit(a.editor.Selection.Column.WithAlign(layout.AlignCenter)) }},
		{ID: cmdAlignRight, Name: "Align right", Description: "text alignment", Palette: true, Disabled: needTextColumn,
			Execute: func(a *App) tea.Cmd { return a.edit(a.editor.Selection.Column.WithAlign(layout.AlignRight)) }},
		{ID: cmdEditText, Name: "Edit text", Description: "type into the text area", Palette: true, Disabled: needTextColumn,
			Execute: (*App).editText},
		{ID: cmdEditImageURL, Name: "Edit image URL", Palette: true, Disabled: needImageColumn,
			Execute: (*App).editImageURL},
		{ID: cmdEditImageAlt, Name: "Edit image alt", Palette: true, Disabled: needImageColumn,
			Execute: (*App).editImageAlt},
	}
}

func needRow(a *App) (bool, string) {
	if a.editor.Selection.State() == layout.SelectedNone {
		return true, "select a row first"
	}
	return false, ""
}

func needColumn(a *App) (bool, string) {
	if a.editor.Selection.State() != layout.SelectedColumn {
		return true, "select a column first"
	}
	return false, ""
}

func needTextColumn(a *App) (bool, string) {
	if off, why := needColumn(a); off {
		return off, why
	}
	if a.editor.Selection.Column.ContentType != layout.ContentText {
		return true, "column does not hold text"
	}
	return false, ""
}

func needImageColumn(a *App) (bool, string) {
	if off, why := needColumn(a); off {
		return off, why
	}
	if a.editor.Selection.Column.ContentType != layout.ContentImage {
		return true, "column does not hold an image"
	}
	return false, ""
}

func (a *App) quit() tea.Cmd {
	a.quitting = true
	return tea.Quit
}

func (a *App) addRow() tea.Cmd {
	next, outcome := a.editor.AddRow()
	a.setEditor(next, true)
	if outcome == layout.Dropped {
		a.setStatus("selected row no longer exists: row not inserted", statusWarn)
		return nil
	}
	a.setStatus("row added", statusInfo)
	return nil
}

func (a *App) addColumn() tea.Cmd {
	next, outcome := a.editor.AddColumn()
	a.setEditor(next, true)
	if outcome == layout.Dropped {
		a.setStatus("no matching column in the selected row: column not inserted", statusWarn)
		return nil
	}
	a.setStatus("column added", statusInfo)
	return nil
}

func (a *App) edit(col layout.Column) tea.Cmd {
	a.changeColumn(col)
	return nil
}

func (a *App) editText() tea.Cmd {
	a.focus = focusText
	return a.textArea.Focus()
}

func (a *App) editImageURL() tea.Cmd {
	a.focus = focusImageURL
	return a.urlInput.Focus()
}

func (a *App) editImageAlt() tea.Cmd {
	a.focus = focusImageAlt
	return a.altInput.Focus()
}

func (a *App) move(next layout.Editor) tea.Cmd {
	a.setEditor(next, true)
	return nil
}

// runArgCommand handles palette input of the form "align <left|center|right>"
// or "content <text|image>". ok is false for anything else.
func (a *App) runArgCommand(query string) (cmd tea.Cmd, ok bool) {
	verb, arg, found := strings.Cut(strings.TrimSpace(query), " ")
	if !found {
		return nil, false
	}
	switch strings.ToLower(verb) {
	case "align":
		if off, why := needTextColumn(a); off {
			return StatusCmd(why), true
		}
		align, err := layout.ParseTextAlign(arg)
		if err != nil {
			return ErrorCmd(err), true
		}
		return a.edit(a.editor.Selection.Column.WithAlign(align)), true
	case "content":
		if off, why := needColumn(a); off {
			return StatusCmd(why), true
		}
		ct, err := layout.ParseContentType(arg)
		if err != nil {
			return ErrorCmd(err), true
		}
		return a.edit(a.editor.Selection.Column.WithType(ct)), true
	}
	return nil, false
}

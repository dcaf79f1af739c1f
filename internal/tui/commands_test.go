package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestSearchSkipsKeyOnlyAndSortsDisabledLast(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Palette: true},
		{ID: "b", Name: "Beta", Palette: true, Disabled: func(*App) (bool, string) { return true, "blocked" }},
		{ID: "c", Name: "Hidden"},
	})
	res := reg.Search("", nil)
	require.Len(t, res, 2)
	require.Equal(t, "a", res[0].CommandID)
	require.True(t, res[1].Disabled)
	require.Equal(t, "blocked", res[1].Reason)
}

func TestSearchFallsBackToLevenshtein(t *testing.T) {
	reg := NewCommandRegistry(defaultCommands())
	a := newTestApp(t)

	res := reg.Search("add colum", a)
	require.NotEmpty(t, res)
	require.Equal(t, cmdAddColumn, res[len(res)-1].CommandID, "disabled without a selection, still listed")

	res = reg.Search("allign right", a)
	require.NotEmpty(t, res)
	require.Equal(t, cmdAlignRight, res[0].CommandID)
	require.Less(t, res[0].Score, 1.0)

	require.Empty(t, reg.Search("zzzzzzzz", a))
}

func TestSearchRanksExactThenPrefixThenSubstring(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "align", Name: "Align", Description: "text alignment", Palette: true},
		{ID: "edit", Name: "Edit text", Palette: true},
		{ID: "texture", Name: "Texture", Palette: true},
		{ID: "text", Name: "Text", Palette: true},
	})
	res := reg.Search("Text", nil)
	require.Len(t, res, 4)
	require.Equal(t, "text", res[0].CommandID)
	require.Equal(t, "texture", res[1].CommandID)
	require.Equal(t, 1.0, res[2].Score)
	require.Equal(t, 1.0, res[3].Score)
}

func TestExecuteUnknownAndDisabled(t *testing.T) {
	ran := false
	reg := NewCommandRegistry([]Command{
		{ID: "off", Disabled: func(*App) (bool, string) { return true, "" }, Execute: func(*App) tea.Cmd { ran = true; return nil }},
		{ID: "noop"},
	})
	msg := reg.Execute("missing", nil)()
	require.Equal(t, StatusMsg{Text: "unknown command: missing"}, msg)

	msg = reg.Execute("off", nil)()
	require.Equal(t, StatusMsg{Text: "command is disabled"}, msg)
	require.False(t, ran)

	require.Nil(t, reg.Execute("noop", nil))
}

func TestSimilarity(t *testing.T) {
	require.InDelta(t, 1.0, similarity("", ""), 1e-9)
	require.InDelta(t, 1.0, similarity("quit", "quit"), 1e-9)
	require.InDelta(t, 6.0/7.0, similarity("ad row", "add row"), 1e-9)
	require.Less(t, similarity("xyz", "add row"), minSimilarity)
}

func TestKeyRegistryScopes(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	q := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	require.Equal(t, cmdQuit, reg.Action(q, scopeStage))
	require.Empty(t, reg.Action(q, scopeText))
	require.Equal(t, cmdQuit, reg.Action(tea.KeyMsg{Type: tea.KeyCtrlC}, scopeText))

	esc := tea.KeyMsg{Type: tea.KeyEscape}
	require.Equal(t, cmdSelectRow, reg.Action(esc, scopeStage))
	require.Equal(t, actionBlur, reg.Action(esc, scopePalette))

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	require.Equal(t, cmdEditText, reg.Action(enter, scopeStage))
	require.Equal(t, actionSubmit, reg.Action(enter, scopePalette))
	require.Equal(t, actionBlur, reg.Action(enter, scopeInput))
	require.Empty(t, reg.Action(enter, scopeText), "enter inserts a newline in the text area")

	require.Equal(t, "r", reg.KeysFor(cmdAddRow))
	require.Empty(t, reg.KeysFor("nope"))
}

package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pagebuilder/internal/config"
	"github.com/jask/pagebuilder/internal/layout"
	"github.com/jask/pagebuilder/internal/widgets"
)

type focusTarget string

const (
	focusStage    focusTarget = "stage"
	focusText     focusTarget = "text"
	focusImageURL focusTarget = "imageURL"
	focusImageAlt focusTarget = "imageAlt"
	focusPalette  focusTarget = "palette"
)

// paletteRows caps how many matches the command palette lists.
const paletteRows = 5

// App is the editor's bubbletea model. It owns the document and selection
// and replaces them with each intent's result.
type App struct {
	cfg      config.Config
	editor   layout.Editor
	keys     *KeyRegistry
	commands *CommandRegistry
	focus    focusTarget

	textArea textarea.Model
	urlInput textinput.Model
	altInput textinput.Model
	palette  textinput.Model

	status      string
	statusLevel statusLevel
	width       int
	height      int
	quitting    bool
}

func New(cfg config.Config, editor layout.Editor) *App {
	inner := cfg.UI.PanelWidth - 4

	ta := textarea.New()
	ta.Placeholder = "Enter text"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(inner)
	ta.SetHeight(cfg.UI.TextRows)
	ta.Blur()

	url := textinput.New()
	url.Prompt = "› "
	url.Placeholder = "https://"
	url.Width = inner - 3

	alt := textinput.New()
	alt.Prompt = "› "
	alt.Placeholder = "describe the image"
	alt.Width = inner - 3

	pal := textinput.New()
	pal.Prompt = ": "
	pal.Placeholder = "command"

	a := &App{
		cfg:      cfg,
		editor:   editor,
		keys:     NewKeyRegistry(DefaultKeyBindings()),
		commands: NewCommandRegistry(defaultCommands()),
		focus:    focusStage,
		textArea: ta,
		urlInput: url,
		altInput: alt,
		palette:  pal,
		status:   "Ready",
		width:    100,
		height:   32,
	}
	a.syncPanel()
	return a
}

// Editor returns the current document and selection.
func (a *App) Editor() layout.Editor { return a.editor }

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case StatusMsg:
		a.status, a.statusLevel = m.Text, m.Level
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) scope() string {
	switch a.focus {
	case focusText:
		return scopeText
	case focusImageURL, focusImageAlt:
		return scopeInput
	case focusPalette:
		return scopePalette
	default:
		return scopeStage
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := a.keys.Action(msg, a.scope())
	if action == cmdQuit && a.focus != focusStage {
		a.quitting = true
		return a, tea.Quit
	}
	switch a.focus {
	case focusPalette:
		return a.handlePaletteKey(msg, action)
	case focusText, focusImageURL, focusImageAlt:
		return a.handleFieldKey(msg, action)
	}
	switch action {
	case "":
		return a, nil
	case actionPalette:
		return a, a.openPalette()
	}
	log.Printf("intent %s", action)
	return a, a.commands.Execute(action, a)
}

// handleFieldKey feeds keys to the focused panel field and applies every
// change to the selected column as it is typed.
func (a *App) handleFieldKey(msg tea.KeyMsg, action string) (tea.Model, tea.Cmd) {
	if action == actionBlur {
		a.blur()
		return a, nil
	}
	var cmd tea.Cmd
	col := a.editor.Selection.Column
	switch a.focus {
	case focusText:
		a.textArea, cmd = a.textArea.Update(msg)
		if v := a.textArea.Value(); v != col.Text {
			a.changeColumn(col.WithText(v))
		}
	case focusImageURL:
		a.urlInput, cmd = a.urlInput.Update(msg)
		if v := a.urlInput.Value(); v != col.Image {
			a.changeColumn(col.WithImage(v))
		}
	case focusImageAlt:
		a.altInput, cmd = a.altInput.Update(msg)
		if v := a.altInput.Value(); v != col.ImageAlt {
			a.changeColumn(col.WithImageAlt(v))
		}
	}
	return a, cmd
}

func (a *App) handlePaletteKey(msg tea.KeyMsg, action string) (tea.Model, tea.Cmd) {
	switch action {
	case actionBlur:
		a.blur()
		return a, nil
	case actionSubmit:
		query := a.palette.Value()
		a.blur()
		if cmd, ok := a.runArgCommand(query); ok {
			return a, cmd
		}
		results := a.commands.Search(query, a)
		if len(results) == 0 {
			a.setStatus(fmt.Sprintf("no command matches %q", query), statusWarn)
			return a, nil
		}
		log.Printf("palette %q -> %s", query, results[0].CommandID)
		return a, a.commands.Execute(results[0].CommandID, a)
	}
	var cmd tea.Cmd
	a.palette, cmd = a.palette.Update(msg)
	return a, cmd
}

func (a *App) openPalette() tea.Cmd {
	a.blur()
	a.focus = focusPalette
	a.palette.SetValue("")
	return a.palette.Focus()
}

func (a *App) blur() {
	a.focus = focusStage
	a.textArea.Blur()
	a.urlInput.Blur()
	a.altInput.Blur()
	a.palette.Blur()
}

func (a *App) setStatus(text string, level statusLevel) {
	a.status, a.statusLevel = text, level
}

// setEditor installs the next document state. Selection moves reload the
// panel fields; in-place edits keep the field the user is typing in.
func (a *App) setEditor(next layout.Editor, selectionMoved bool) {
	a.editor = next
	if selectionMoved {
		a.syncPanel()
	}
}

func (a *App) syncPanel() {
	col := a.editor.Selection.Column
	a.textArea.SetValue(col.Text)
	a.urlInput.SetValue(col.Image)
	a.altInput.SetValue(col.ImageAlt)
}

func (a *App) changeColumn(col layout.Column) {
	next, outcome := a.editor.ChangeColumn(col)
	a.setEditor(next, false)
	if outcome == layout.Dropped {
		a.setStatus("selected column no longer exists", statusWarn)
		return
	}
	a.setStatus("column updated", statusInfo)
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	header := headerStyle.Render("pagebuilder") + mutedStyle.Render(fmt.Sprintf("  rows %d · columns %d · selection %s",
		len(a.editor.Rows), layout.CountColumns(a.editor.Rows), a.editor.Selection.State()))
	status := a.renderStatusBar()
	var footer string
	if a.cfg.UI.ShowFooter {
		footer = a.renderFooter()
	}

	panelWidth := a.cfg.UI.PanelWidth
	stageWidth := max(minColumnWidth+4, a.width-panelWidth-1)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderStage(a.editor, stageWidth), " ", a.renderPanel(panelWidth))
	if a.focus == focusPalette {
		body = a.renderPalette() + "\n" + body
	}

	available := a.height - lipgloss.Height(header) - lipgloss.Height(status)
	if footer != "" {
		available -= lipgloss.Height(footer)
	}
	parts := []string{header, widgets.ClipLines(body, max(1, available)), status}
	if footer != "" {
		parts = append(parts, footer)
	}
	return appStyle.MaxWidth(max(1, a.width)).Render(strings.Join(parts, "\n"))
}

func (a *App) renderPalette() string {
	lines := []string{a.palette.View()}
	for i, r := range a.commands.Search(a.palette.Value(), a) {
		if i == paletteRows {
			break
		}
		line := r.Name
		if r.Disabled {
			line = mutedStyle.Render(line + " (" + r.Reason + ")")
		} else if i == 0 {
			line = keyStyle.Render("› " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return paletteStyle.Render(strings.Join(lines, "\n"))
}

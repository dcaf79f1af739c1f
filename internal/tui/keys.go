package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeStage    = "stage"
	scopeText     = "text"
	scopeInput    = "input"
	scopePalette  = "palette"
	scopeAnywhere = "*"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
	// Hidden bindings still fire but stay out of the footer.
	Hidden bool
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Action returns the action bound to msg in scope, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

// KeysFor returns the first key bound to action, for labels in the panel.
func (r *KeyRegistry) KeysFor(action string) string {
	for _, b := range r.bindings {
		if b.Action == action && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return ""
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == scopeAnywhere || s == scope {
			return true
		}
	}
	return false
}

// DefaultKeyBindings maps keys to command ids; see defaultCommands.
func DefaultKeyBindings() []KeyBinding {
	stage := []string{scopeStage}
	editing := []string{scopeText, scopeInput, scopePalette}
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: cmdQuit, Description: "quit", Scopes: []string{scopeAnywhere}, Hidden: true},
		{Keys: []string{"q"}, Action: cmdQuit, Description: "quit", Scopes: stage},
		{Keys: []string{"r"}, Action: cmdAddRow, Description: "add row", Scopes: stage},
		{Keys: []string{"c"}, Action: cmdAddColumn, Description: "add column", Scopes: stage},
		{Keys: []string{"k", "up"}, Action: cmdPrevRow, Description: "row up", Scopes: stage},
		{Keys: []string{"j", "down"}, Action: cmdNextRow, Description: "row down", Scopes: stage},
		{Keys: []string{"h", "left"}, Action: cmdPrevColumn, Description: "column left", Scopes: stage},
		{Keys: []string{"l", "right"}, Action: cmdNextColumn, Description: "column right", Scopes: stage},
		{Keys: []string{"esc"}, Action: cmdSelectRow, Description: "select row", Scopes: stage},
		{Keys: []string{"t"}, Action: cmdContentText, Description: "text", Scopes: stage},
		{Keys: []string{"i"}, Action: cmdContentImage, Description: "image", Scopes: stage},
		{Keys: []string{"["}, Action: cmdAlignLeft, Description: "align left", Scopes: stage, Hidden: true},
		{Keys: []string{"="}, Action: cmdAlignCenter, Description: "align center", Scopes: stage, Hidden: true},
		{Keys: []string{"]"}, Action: cmdAlignRight, Description: "align right", Scopes: stage, Hidden: true},
		{Keys: []string{"e", "enter"}, Action: cmdEditText, Description: "edit text", Scopes: stage},
		{Keys: []string{"u"}, Action: cmdEditImageURL, Description: "image url", Scopes: stage, Hidden: true},
		{Keys: []string{"a"}, Action: cmdEditImageAlt, Description: "image alt", Scopes: stage, Hidden: true},
		{Keys: []string{":", "ctrl+k"}, Action: actionPalette, Description: "commands", Scopes: stage},
		{Keys: []string{"esc"}, Action: actionBlur, Description: "done", Scopes: editing},
		{Keys: []string{"enter"}, Action: actionSubmit, Description: "run", Scopes: []string{scopePalette}},
		{Keys: []string{"enter", "tab"}, Action: actionBlur, Description: "done", Scopes: []string{scopeInput}, Hidden: true},
	}
}

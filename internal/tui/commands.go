package tui

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	cmdQuit         = "quit"
	cmdAddRow       = "add-row"
	cmdAddColumn    = "add-column"
	cmdPrevRow      = "prev-row"
	cmdNextRow      = "next-row"
	cmdPrevColumn   = "prev-column"
	cmdNextColumn   = "next-column"
	cmdSelectRow    = "select-row"
	cmdContentText  = "content-text"
	cmdContentImage = "content-image"
	cmdAlignLeft    = "align-left"
	cmdAlignCenter  = "align-center"
	cmdAlignRight   = "align-right"
	cmdEditText     = "edit-text"
	cmdEditImageURL = "edit-image-url"
	cmdEditImageAlt = "edit-image-alt"

	actionPalette = "open-palette"
	actionBlur    = "blur"
	actionSubmit  = "submit"
)

// minSimilarity is the fuzzy score a command name needs when no name
// contains the query outright.
const minSimilarity = 0.6

type Command struct {
	ID          string
	Name        string
	Description string
	// Palette commands are offered in the command palette; the rest are
	// key-only navigation.
	Palette  bool
	Execute  func(a *App) tea.Cmd
	Disabled func(a *App) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
	Score     float64
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

// Search lists palette commands matching query. An exact name beats a name
// prefix, which beats a substring of the name, description or ID. When
// nothing matches, names within Levenshtein similarity minSimilarity of the
// query are offered so typos still resolve.
func (r *CommandRegistry) Search(query string, a *App) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	exact := make([]CommandResult, 0, len(r.commands))
	fuzzy := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		if !c.Palette {
			continue
		}
		res := r.result(c, a)
		if s := matchScore(q, c); s > 0 {
			res.Score = s
			exact = append(exact, res)
			continue
		}
		if s := similarity(q, strings.ToLower(c.Name)); s >= minSimilarity {
			res.Score = s
			fuzzy = append(fuzzy, res)
		}
	}
	results := exact
	if len(results) == 0 {
		results = fuzzy
	}
	slices.SortFunc(results, func(x, y CommandResult) int {
		if x.Disabled != y.Disabled {
			if !x.Disabled {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(y.Score, x.Score); c != 0 {
			return c
		}
		return cmp.Compare(x.Name, y.Name)
	})
	return results
}

func matchScore(q string, c Command) float64 {
	name := strings.ToLower(c.Name)
	switch {
	case q == "" || name == q:
		return 3
	case strings.HasPrefix(name, q):
		return 2
	case strings.Contains(strings.ToLower(c.Name+" "+c.Description+" "+c.ID), q):
		return 1
	}
	return 0
}

func (r *CommandRegistry) result(c Command, a *App) CommandResult {
	res := CommandResult{CommandID: c.ID, Name: c.Name, Desc: c.Description}
	if c.Disabled != nil {
		res.Disabled, res.Reason = c.Disabled(a)
	}
	return res
}

func (r *CommandRegistry) Execute(id string, a *App) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(a)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(a)
}

func similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

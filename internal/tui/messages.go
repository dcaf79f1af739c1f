package tui

import tea "github.com/charmbracelet/bubbletea"

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusErr
)

type StatusMsg struct {
	Text  string
	Level statusLevel
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), Level: statusErr}
	}
}

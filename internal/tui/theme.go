package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the editor draws with.
const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
	colorPink     lipgloss.Color = "#f5c2e7"
	colorLavender lipgloss.Color = "#b4befe"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSelect  = colorBlue
	colorMuted   = colorSubtext0
	colorBorder  = colorOverlay0
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorPeach
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	labelStyle        = lipgloss.NewStyle().Foreground(colorMuted)
	mutedStyle        = lipgloss.NewStyle().Foreground(colorMuted)
	activeOptionStyle = lipgloss.NewStyle().Foreground(colorMantle).Background(colorSelect).Bold(true).Padding(0, 1)
	optionStyle       = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSurface1)
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	placeholderStyle = lipgloss.NewStyle().Foreground(colorOverlay0).Italic(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusWarnBarStyle = lipgloss.NewStyle().
				Foreground(colorWarning).
				Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	paletteStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFocus).
			Padding(0, 1)
)

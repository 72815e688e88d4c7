package style

import (
	"github.com/charmbracelet/lipgloss"
)

var palette = DefaultPalette()

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0, 0, 0)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Margin(0, 0, 1, 0)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted).
			Padding(1, 2).
			Margin(0, 1)

	StandardPanelStyle = PanelStyle.
				BorderForeground(palette.Standard)

	InbeefPanelStyle = PanelStyle.
				BorderForeground(palette.Inbeef)
)

// Result styles
var (
	ResultLabelStyle = lipgloss.NewStyle().
				Foreground(palette.TextSecondary)

	ResultValueStyle = lipgloss.NewStyle().
				Foreground(palette.Text).
				Bold(true)

	InterpretationStyle = lipgloss.NewStyle().
				Foreground(palette.Text).
				Margin(1, 1, 0, 1)
)

// Status styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(palette.Info)
)

// Help bar style
var (
	HelpStyle = lipgloss.NewStyle().
		Foreground(palette.TextMuted).
		Margin(1, 0, 0, 0).
		Italic(true)
)

// AdaptiveJoinHorizontal stacks blocks vertically on narrow screens.
func AdaptiveJoinHorizontal(width int, blocks ...string) string {
	if width > 0 && width < 100 {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

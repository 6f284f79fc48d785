package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF6C00")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D32")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	focusedPanelStyle = panelStyle.
				BorderForeground(lipgloss.Color("#5B8DEF"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5B8DEF")).
			Padding(0, 2)
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#AAAAAA")).
				Padding(0, 2)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#444444")).
			Padding(0, 2)
	activeButtonStyle = buttonStyle.
				Background(lipgloss.Color("#5B8DEF")).
				Bold(true)
)

func panel(focused bool) lipgloss.Style {
	if focused {
		return focusedPanelStyle
	}
	return panelStyle
}

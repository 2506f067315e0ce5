package ui

import (
	"strings"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	m.helpStyles()
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	return modalFrame(m.theme, m.width, m.height, b.String())
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title bar: locale in effect, moment and theme.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bar := lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Surface))
	on := func(s lipgloss.Style) lipgloss.Style { return s.Inherit(bar) }

	locale := m.snapshot.Config.Locale
	localeStyle := on(styles.Text)
	if locale == "" {
		locale = "default"
		if m.defaultLocale != "" {
			locale += " (" + m.defaultLocale + ")"
		}
		localeStyle = on(styles.MutedText)
	}

	sep := bar.Render("  ")
	parts := []string{
		on(styles.AccentText).Bold(true).Render("dtexplorer"),
		on(styles.FaintText).Render("locale") + bar.Render(" ") + localeStyle.Render(locale),
		on(styles.FaintText).Render("at") + bar.Render(" ") +
			on(styles.Text).Render(m.snapshot.Moment.Format("2006-01-02 15:04:05 MST")),
	}
	if m.snapshot.CanUndo {
		parts = append(parts, on(styles.InfoText).Render("u:undo"))
	}
	parts = append(parts, on(styles.AccentText).Render("T")+bar.Render(":")+on(styles.FaintText).Render(m.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderFooter renders the key hints or the pending notice.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	content := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.notice != "" {
		style := styles.SuccessText
		if m.noticeErr {
			style = styles.DangerText
		}
		content = style.Render(m.notice)
	}
	return styles.Footer.Width(m.width).Render(content)
}

// truncate truncates a string to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

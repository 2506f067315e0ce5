package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	formWidth  = 44
	labelWidth = 18
)

// renderMain renders header, form, result panel and footer.
func (m Model) renderMain() string {
	m.helpStyles()

	bodyHeight := max(m.height-2, 3)
	left := min(formWidth, m.width/2)
	right := max(m.width-left, 20)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderForm(left, bodyHeight),
		m.renderResult(right, bodyHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

// renderForm renders the visible window of form rows around the cursor.
func (m Model) renderForm(width, height int) string {
	styles := m.theme.Styles()
	inner := max(height-2, 1)

	start := 0
	if m.cursor >= inner {
		start = m.cursor - inner + 1
	}
	end := min(start+inner, len(m.rows))

	valueWidth := max(width-labelWidth-6, 4)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		r := m.rows[i]
		label := fmt.Sprintf("%-*s", labelWidth, r.label)
		value := m.rowValue(r, valueWidth)
		if i == m.cursor {
			lines = append(lines, styles.Selected.Width(width-4).Render(label+value))
			continue
		}
		lines = append(lines, styles.MutedText.Render(label)+value)
	}

	return styles.FocusPanel.
		Width(width - 2).
		Height(inner).
		Render(strings.Join(lines, "\n"))
}

// rowValue renders a row's current value.
func (m Model) rowValue(r row, width int) string {
	styles := m.theme.Styles()
	if r.disabled(m.snapshot.Config) {
		return styles.FaintText.Render("needs locale")
	}
	value, ok := r.value(m.snapshot)
	if !ok {
		return styles.FaintText.Render("undefined")
	}
	return styles.Text.Render(truncate(value, width))
}

// renderResult renders the formatted output, the resolved options and the
// exportable snippet.
func (m Model) renderResult(width, height int) string {
	styles := m.theme.Styles()
	inner := width - 4

	var sections []string

	if m.output.OK() {
		sections = append(sections, styles.Result.Render(m.output.Display))
	} else {
		sections = append(sections,
			styles.DangerText.Render("⚠ invalid configuration"),
			styles.WarningText.Width(inner).Render(m.output.Err.Error()),
		)
	}

	if m.output.OK() {
		var b strings.Builder
		b.WriteString(styles.AccentText.Bold(true).Render("Resolved options"))
		for _, e := range m.output.Resolved.Entries() {
			b.WriteString("\n")
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("%-*s", labelWidth, e.Key)))
			b.WriteString(styles.Text.Render(e.Value))
		}
		sections = append(sections, b.String())
	}

	if m.showSnippet {
		sections = append(sections,
			styles.AccentText.Bold(true).Render("Snippet")+"\n"+
				renderCode(m.snippetText(), m.theme.Markdown, inner))
	}

	return styles.Panel.
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(strings.Join(sections, "\n\n"))
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dtexplorer/internal/state"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// actionMsg carries a form transition chosen in a modal.
type actionMsg struct{ action state.Action }

// momentMsg carries a new moment from the date/time editor.
type momentMsg struct{ moment time.Time }

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// pickerItem is one choice in a picker list.
type pickerItem struct {
	value string
	title string
	desc  string
}

func (i pickerItem) Title() string       { return i.title }
func (i pickerItem) Description() string { return i.desc }
func (i pickerItem) FilterValue() string { return i.title + " " + i.desc }

// pickerModal lets the user choose one value for a form row.
type pickerModal struct {
	row  row
	list list.Model
}

func newPicker(r row, current string, width, height int) *pickerModal {
	choices := r.choices()
	items := make([]list.Item, len(choices))
	selected := 0
	withDesc := false
	for i, c := range choices {
		items[i] = c
		if c.value == current {
			selected = i
		}
		if c.desc != "" {
			withDesc = true
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = withDesc
	delegate.SetSpacing(0)

	w, h := pickerSize(width, height)
	l := list.New(items, delegate, w, h)
	l.Title = strings.TrimSpace(r.label)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Select(selected)

	return &pickerModal{row: r, list: l}
}

func pickerSize(width, height int) (int, int) {
	w := min(max(width/2, 30), 60)
	h := max(height-8, 8)
	return w, h
}

func (p *pickerModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok && p.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, keys.Escape) && p.list.FilterState() == list.Unfiltered:
			return p, nil, true
		case key.Matches(km, keys.Confirm):
			item, ok := p.list.SelectedItem().(pickerItem)
			if !ok {
				return p, nil, true
			}
			return p, emit(actionMsg{action: p.row.action(item.value)}), true
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd, false
}

func (p *pickerModal) View(theme Theme, width, height int) string {
	w, h := pickerSize(width, height)
	p.list.SetSize(w, h)
	p.list.Styles.Title = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Accent)).
		Foreground(lipgloss.Color(theme.Background)).
		Padding(0, 1)
	return modalFrame(theme, width, height, p.list.View())
}

// momentEditor edits the selected moment as a date and a time field.
type momentEditor struct {
	loc    *time.Location
	inputs [2]textinput.Model // date, time
	focus  int
	err    string
}

func newMomentEditor(moment time.Time, focusTime bool) *momentEditor {
	e := &momentEditor{loc: moment.Location()}

	date := textinput.New()
	date.Prompt = "date "
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = len(dateLayout)
	date.SetValue(moment.Format(dateLayout))

	clock := textinput.New()
	clock.Prompt = "time "
	clock.Placeholder = "HH:MM:SS"
	clock.CharLimit = len(timeLayout)
	clock.SetValue(moment.Format(timeLayout))

	e.inputs = [2]textinput.Model{date, clock}
	if focusTime {
		e.focus = 1
	}
	e.inputs[e.focus].Focus()
	return e
}

// parseMoment combines a date and a time in loc.
func parseMoment(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(clock), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected %s %s", "YYYY-MM-DD", "HH:MM:SS")
	}
	return t, nil
}

func (e *momentEditor) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.Escape):
			return e, nil, true
		case key.Matches(km, keys.NextInput):
			e.inputs[e.focus].Blur()
			e.focus = 1 - e.focus
			e.inputs[e.focus].Focus()
			return e, nil, false
		case key.Matches(km, keys.Confirm):
			t, err := parseMoment(e.inputs[0].Value(), e.inputs[1].Value(), e.loc)
			if err != nil {
				e.err = err.Error()
				return e, nil, false
			}
			return e, emit(momentMsg{moment: t}), true
		}
	}

	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	e.err = ""
	return e, cmd, false
}

func (e *momentEditor) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Change date"))
	b.WriteString("\n\n")
	b.WriteString(e.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(e.inputs[1].View())
	b.WriteString("\n\n")
	if e.err != "" {
		b.WriteString(styles.DangerText.Render(e.err))
	} else {
		b.WriteString(styles.FaintText.Render("enter apply · tab switch · esc cancel"))
	}
	return modalFrame(theme, width, height, b.String())
}

func modalFrame(theme Theme, width, height int, content string) string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

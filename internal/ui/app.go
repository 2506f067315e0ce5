package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dtexplorer/internal/clipboard"
	"github.com/five82/dtexplorer/internal/derive"
	"github.com/five82/dtexplorer/internal/intl"
	"github.com/five82/dtexplorer/internal/logger"
	"github.com/five82/dtexplorer/internal/prefs"
	"github.com/five82/dtexplorer/internal/snippet"
	"github.com/five82/dtexplorer/internal/state"
)

// Options configures the UI.
type Options struct {
	Context       context.Context
	Store         *state.Store
	Formatter     intl.Formatter
	Copier        clipboard.Copier
	DefaultLocale string
	ThemeName     string
	ShowSnippet   bool
	PrefsPath     string
	Now           func() time.Time // nil uses time.Now
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store         *state.Store
	pipeline      *derive.Pipeline
	copier        clipboard.Copier
	defaultLocale string
	prefsPath     string
	now           func() time.Time

	// UI state
	keys   keyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool

	// Form state
	rows     []row
	cursor   int
	snapshot state.Snapshot
	output   derive.Output

	modal       Modal
	showHelp    bool
	showSnippet bool

	// Transient status line message
	notice    string
	noticeErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	store := opts.Store
	if store == nil {
		store = state.NewStore(now())
	}

	formatter := opts.Formatter
	if formatter == nil {
		formatter = intl.Engine{}
	}

	copier := opts.Copier
	if copier == nil {
		copier = clipboard.New()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		store:         store,
		pipeline:      derive.NewPipeline(formatter),
		copier:        copier,
		defaultLocale: opts.DefaultLocale,
		prefsPath:     prefsPath,
		now:           now,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		theme:         GetTheme(themeName),
		rows:          formRows(),
		showSnippet:   opts.ShowSnippet,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case actionMsg:
		m.dispatch(msg.action)
		return m, nil

	case momentMsg:
		if m.store.SetMoment(msg.moment) {
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Non-key messages (cursor blink, list filtering) still belong to the modal.
	if m.modal != nil {
		var cmd tea.Cmd
		m.modal, cmd, _ = m.modal.Update(msg, m.keys)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	m.notice = ""
	m.noticeErr = false
	current := m.rows[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()

	case key.Matches(msg, m.keys.ToggleSnippet):
		m.showSnippet = !m.showSnippet
		m.savePrefs()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.rows) - 1

	case key.Matches(msg, m.keys.Edit):
		if m.blocked(current) {
			return m, nil
		}
		switch current.kind {
		case rowDate, rowTime:
			m.modal = newMomentEditor(m.snapshot.Moment, current.kind == rowTime)
		default:
			value, _ := current.value(m.snapshot)
			m.modal = newPicker(current, value, m.width, m.height)
		}

	case key.Matches(msg, m.keys.ClearRow):
		if !current.clearable() || m.blocked(current) {
			return m, nil
		}
		m.dispatch(current.action(state.Clear))

	case key.Matches(msg, m.keys.Bump):
		m.stepRow(current, 1)
	case key.Matches(msg, m.keys.Unbump):
		m.stepRow(current, -1)

	case key.Matches(msg, m.keys.Reset):
		if m.store.Dispatch(state.Reset{}) {
			m.refresh()
			m.setNotice("Configuration cleared", false)
		}

	case key.Matches(msg, m.keys.Undo):
		if m.store.Undo() {
			m.refresh()
		} else {
			m.setNotice("Nothing to undo", false)
		}

	case key.Matches(msg, m.keys.Now):
		if m.store.SetMoment(m.now()) {
			m.refresh()
		}

	case key.Matches(msg, m.keys.Copy):
		m.copySnippet()
	}

	return m, nil
}

// blocked reports a disabled row to the user.
func (m *Model) blocked(r row) bool {
	if !r.disabled(m.snapshot.Config) {
		return false
	}
	m.setNotice("Set a locale before its -u-"+r.ext.Key()+" extension", true)
	return true
}

func (m *Model) stepRow(r row, delta int) {
	if t, ok := r.shiftMoment(m.snapshot.Moment, delta); ok {
		if m.store.SetMoment(t) {
			m.refresh()
		}
		return
	}
	if m.blocked(r) {
		return
	}
	if action := r.step(m.snapshot, delta); action != nil {
		m.dispatch(action)
	}
}

func (m *Model) dispatch(action state.Action) {
	if action == nil {
		return
	}
	if m.store.Dispatch(action) {
		logger.Debug("configuration changed", "action", action)
		m.refresh()
	}
}

// refresh re-reads the store and recomputes the derived output before the
// next frame is drawn.
func (m *Model) refresh() {
	m.snapshot = m.store.Snapshot()
	m.output = m.pipeline.Update(m.snapshot.Config, m.snapshot.Moment)
}

func (m *Model) snippetText() string {
	return snippet.Render(m.snapshot.Moment, m.snapshot.Config, m.defaultLocale)
}

func (m *Model) copySnippet() {
	if err := m.copier.Copy(m.snippetText()); err != nil {
		logger.Warn("copy snippet failed", "error", err)
		m.setNotice("Copy failed: "+err.Error(), true)
		return
	}
	m.setNotice("Snippet copied to clipboard", false)
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, ShowSnippet: m.showSnippet}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		logger.Warn("save preferences failed", "path", m.prefsPath, "error", err)
	}
}

func (m *Model) helpStyles() {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.ShortDesc = descStyle
	m.help.Styles.ShortSeparator = sepStyle
	m.help.Styles.FullKey = keyStyle
	m.help.Styles.FullDesc = descStyle
	m.help.Styles.FullSeparator = sepStyle
	m.help.Styles.Ellipsis = sepStyle
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	applyColorProfile()

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

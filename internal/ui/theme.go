package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header, footer and panels
	SurfaceAlt string // Modal backgrounds
	FocusBg    string // Focused row

	SelectionText string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Markdown is the glamour standard style used for the snippet panel.
	Markdown string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		InfoText:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.FocusBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FocusPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Result: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header     lipgloss.Style
	Footer     lipgloss.Style
	Selected   lipgloss.Style
	Panel      lipgloss.Style
	FocusPanel lipgloss.Style
	Result     lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Daylight": daylightTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Daylight"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#2b3b51", // sel0

		SelectionText: "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		Markdown: "dark",
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4
		FocusBg:    "#2D4F67", // waveBlue1

		SelectionText: "#DCD7BA", // fujiWhite

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue

		Markdown: "dark",
	}
}

func daylightTheme() Theme {
	// Tailwind CSS slate/sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Daylight",

		Background: "#f8fafc", // slate-50
		Surface:    "#e2e8f0", // slate-200
		SurfaceAlt: "#f1f5f9", // slate-100
		FocusBg:    "#bae6fd", // sky-200

		SelectionText: "#0f172a", // slate-900

		Border:      "#94a3b8", // slate-400
		BorderFocus: "#0284c7", // sky-600

		Text:    "#0f172a", // slate-900
		Muted:   "#475569", // slate-600
		Faint:   "#64748b", // slate-500
		Accent:  "#0369a1", // sky-700
		Success: "#15803d", // green-700
		Warning: "#b45309", // amber-700
		Danger:  "#b91c1c", // red-700
		Info:    "#0e7490", // cyan-700

		Markdown: "light",
	}
}

// applyColorProfile sets Lip Gloss's color profile for the interactive UI.
// Only NO_COLOR disables colors; CLICOLOR is meant for plain CLI output.
func applyColorProfile() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Some terminals under-report; trust COLORTERM/TERM when they claim more.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

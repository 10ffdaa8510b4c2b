package ui

import (
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/uniterm/internal/view"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and status bars
	SurfaceAlt string // Tiles and cards
	FocusBg    string // Focused action

	SelectionBg   string
	SelectionText string

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

	// Level colors for the logs screen
	LevelColors map[string]string

	// Markdown is the glamour style used for rich text parameters.
	Markdown string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Eyebrow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		ButtonFocus: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectionText)).
			Background(lipgloss.Color(t.FocusBg)).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Tile: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.SurfaceAlt)).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),

		levelColors: t.LevelColors,
		muted:       t.Muted,
		markdown:    t.Markdown,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Chrome
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	// Composition content
	Heading     lipgloss.Style
	Eyebrow     lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style
	Tile        lipgloss.Style
	Box         lipgloss.Style

	levelColors map[string]string
	muted       string
	markdown    string
}

// LevelStyle returns the foreground style for a log level.
func (s Styles) LevelStyle(level string) lipgloss.Style {
	color := s.levelColors[level]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// HeadingStyle returns the style for a heading node with the given style hint.
func (s Styles) HeadingStyle(style view.Style) lipgloss.Style {
	switch style {
	case view.StyleBrand:
		return s.Logo
	case view.StyleHero:
		return s.Heading.Underline(true)
	default:
		return s.Heading
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
	"Latte":   latteTheme(),
}

var themeOrder = []string{"Dracula", "Slate", "Latte"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
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

func draculaTheme() Theme {
	// Official Dracula palette: https://draculatheme.com/spec
	return Theme{
		Name: "Dracula",

		Background: "#191A21", // BGDarker
		Surface:    "#282A36", // Background
		SurfaceAlt: "#21222C", // BGDark
		FocusBg:    "#343746", // BGLight

		SelectionBg:   "#44475A", // Selection
		SelectionText: "#F8F8F2", // Foreground

		Border:      "#44475A", // Selection
		BorderFocus: "#BD93F9", // Purple

		Text:    "#F8F8F2", // Foreground
		Muted:   "#6272A4", // Comment
		Faint:   "#44475A", // Selection
		Accent:  "#BD93F9", // Purple
		Success: "#50FA7B", // Green
		Warning: "#FFB86C", // Orange
		Danger:  "#FF5555", // Red
		Info:    "#8BE9FD", // Cyan

		LevelColors: map[string]string{
			"debug": "#6272A4",
			"info":  "#8BE9FD",
			"warn":  "#FFB86C",
			"error": "#FF5555",
			"fatal": "#FF5555",
		},

		Markdown: styles.DraculaStyle,
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548",

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		LevelColors: map[string]string{
			"debug": "#64748b",
			"info":  "#06b6d4",
			"warn":  "#f59e0b",
			"error": "#dc2626",
			"fatal": "#dc2626",
		},

		Markdown: styles.DarkStyle,
	}
}

func latteTheme() Theme {
	// Catppuccin Latte palette: https://catppuccin.com/palette
	return Theme{
		Name: "Latte",

		Background: "#eff1f5", // Base
		Surface:    "#e6e9ef", // Mantle
		SurfaceAlt: "#dce0e8", // Crust
		FocusBg:    "#ccd0da", // Surface0

		SelectionBg:   "#1e66f5", // Blue
		SelectionText: "#eff1f5", // Base

		Border:      "#bcc0cc", // Surface1
		BorderFocus: "#8839ef", // Mauve

		Text:    "#4c4f69", // Text
		Muted:   "#6c6f85", // Subtext0
		Faint:   "#9ca0b0", // Overlay0
		Accent:  "#8839ef", // Mauve
		Success: "#40a02b", // Green
		Warning: "#df8e1d", // Yellow
		Danger:  "#d20f39", // Red
		Info:    "#04a5e5", // Sky

		LevelColors: map[string]string{
			"debug": "#9ca0b0",
			"info":  "#04a5e5",
			"warn":  "#df8e1d",
			"error": "#d20f39",
			"fatal": "#d20f39",
		},

		Markdown: styles.LightStyle,
	}
}

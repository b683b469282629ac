// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#D4A373"), // Gold
		Secondary:  lipgloss.Color("#B5838D"), // Rose
		Background: lipgloss.Color("#1C1B1A"), // Charcoal
		Foreground: lipgloss.Color("#EDEDE9"), // Ivory
		Muted:      lipgloss.Color("#8A817C"), // Taupe
		Success:    lipgloss.Color("#A3B18A"), // Sage
		Warning:    lipgloss.Color("#E9C46A"), // Amber
		Error:      lipgloss.Color("#E76F51"), // Terracotta
		Border:     lipgloss.Color("#463F3A"), // Border gray
	}
}

// LinenTheme returns a light colour theme for bright terminals.
func LinenTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#8C5E2A"), // Bronze
		Secondary:  lipgloss.Color("#8D5B67"), // Mauve
		Background: lipgloss.Color("#FAF6F0"), // Linen
		Foreground: lipgloss.Color("#2B2724"), // Espresso
		Muted:      lipgloss.Color("#9A8F85"), // Stone
		Success:    lipgloss.Color("#5F7349"), // Olive
		Warning:    lipgloss.Color("#B07D2B"), // Ochre
		Error:      lipgloss.Color("#B23A2F"), // Brick
		Border:     lipgloss.Color("#D8CFC4"), // Sand
	}
}

// ThemeByName maps a configured theme name to a theme. The empty
// string and unknown names fall back to the default.
func ThemeByName(name string) *Theme {
	switch name {
	case "linen", "light":
		return LinenTheme()
	default:
		return DefaultTheme()
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// UserMessage style for the user's chat bubbles.
	UserMessage lipgloss.Style

	// AssistantMessage style for the stylist's chat bubbles.
	AssistantMessage lipgloss.Style

	// Thinking style for in-flight thinking steps.
	Thinking lipgloss.Style

	// Price style for product prices.
	Price lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		UserMessage: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		AssistantMessage: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Thinking: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Muted),

		Price: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		InputField: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Background),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(nil)
}

// Theme returns the underlying theme.
func (s *Styles) Theme() *Theme {
	return s.theme
}

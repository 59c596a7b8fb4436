// Package ui provides the visual styling for the deskmate pet: the
// avatar pane, the speech bubble, the input line, and the status bar.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light mode colors
	LightForeground = lipgloss.Color("#2d2a2e")
	LightAccent     = lipgloss.Color("#b7509b") // pet pink
	LightMuted      = lipgloss.Color("#9a9a9a")
	LightBorder     = lipgloss.Color("#c8c8c8")
	LightBubble     = lipgloss.Color("#fdf6e3")

	// Dark mode colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkAccent     = lipgloss.Color("#ff79c6")
	DarkMuted      = lipgloss.Color("#6a6a6a")
	DarkBorder     = lipgloss.Color("#44475a")
	DarkBubble     = lipgloss.Color("#282a36")

	Warning = lipgloss.Color("#FFC107")
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Bubble     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Bubble:     LightBubble,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Bubble:     DarkBubble,
		IsDark:     true,
	}
}

// DetectTheme picks dark mode from COLORFGBG when the terminal reports
// a dark background, light otherwise.
func DetectTheme() Theme {
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		if len(parts) == 2 {
			if bg, err := strconv.Atoi(parts[1]); err == nil {
				if (bg >= 0 && bg <= 6) || bg == 8 {
					return DarkTheme()
				}
			}
		}
	}
	if os.Getenv("DESKMATE_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styled components for every pane.
type Styles struct {
	Theme Theme

	Avatar    lipgloss.Style
	Bubble    lipgloss.Style
	Input     lipgloss.Style
	StatusBar lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles builds the pane styles for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Avatar: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Padding(0, 1),

		Bubble: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Bubble).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Width(40),

		Input: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

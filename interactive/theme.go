package interactive

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/joshyorko/scriptboard/pretty"
)

// Theme defines the color palette of the pager
type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor
	TextDim   lipgloss.AdaptiveColor
	BorderDim lipgloss.AdaptiveColor
	Surface   lipgloss.AdaptiveColor
}

// DefaultTheme returns Tokyo Night inspired colors
func DefaultTheme() Theme {
	return Theme{
		Primary:   lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
		Accent:    lipgloss.AdaptiveColor{Dark: "#89ddff", Light: "#007197"},
		Text:      lipgloss.AdaptiveColor{Dark: "#bfc7d5", Light: "#4c505e"},
		TextMuted: lipgloss.AdaptiveColor{Dark: "#697098", Light: "#8990a3"},
		TextDim:   lipgloss.AdaptiveColor{Dark: "#4e5579", Light: "#b4b5b9"},
		BorderDim: lipgloss.AdaptiveColor{Dark: "#3e4452", Light: "#dfe1e8"},
		Surface:   lipgloss.AdaptiveColor{Dark: "#292d3e", Light: "#e9e9ec"},
	}
}

// Styles holds the lipgloss styles for the pager
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Divider  lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

func NewStyles() *Styles {
	if pretty.DetectColorMode() == pretty.ColorModeNone {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:    plain.Bold(true),
			Subtle:   plain,
			Divider:  plain,
			HelpKey:  plain,
			HelpDesc: plain,
		}
	}
	return NewStylesWithTheme(DefaultTheme())
}

func NewStylesWithTheme(theme Theme) *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtle:   lipgloss.NewStyle().Foreground(theme.TextMuted),
		Divider:  lipgloss.NewStyle().Foreground(theme.BorderDim),
		HelpKey:  lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Background(theme.Surface).Padding(0, 1),
		HelpDesc: lipgloss.NewStyle().Foreground(theme.TextDim),
	}
}

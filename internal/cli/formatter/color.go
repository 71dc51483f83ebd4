// Package formatter renders learnpath state for the terminal with lipgloss.
package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RarityStyle colors a badge by rarity.
func RarityStyle(r domain.Rarity) lipgloss.Style {
	switch r {
	case domain.RarityLegendary:
		return StyleHeader
	case domain.RarityEpic:
		return StylePurple
	case domain.RarityRare:
		return StyleBlue
	default:
		return StyleFg
	}
}

// DifficultyBadge returns a colored difficulty label such as "● beginner".
func DifficultyBadge(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyBeginner:
		return StyleGreen.Render("● beginner")
	case domain.DifficultyIntermediate:
		return StyleYellow.Render("● intermediate")
	case domain.DifficultyAdvanced:
		return StyleRed.Render("● advanced")
	default:
		return StyleDim.Render("● " + string(d))
	}
}

// SentimentIcon returns a short marker for a task's sentiment tag.
func SentimentIcon(s domain.Sentiment) string {
	switch s {
	case domain.SentimentPositive:
		return StyleGreen.Render("+")
	case domain.SentimentNegative:
		return StyleRed.Render("-")
	default:
		return ""
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

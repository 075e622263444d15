// Package cli renders hints and engine status for the terminal using lipgloss.
package cli

import (
	"github.com/Veraticus/gto-overlay/internal/model"
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (felt green).
	PrimaryColor = lipgloss.Color("#2ECC71")
	// AggressiveColor marks raise and bet actions.
	AggressiveColor = lipgloss.Color("#FF6B6B")
	// PassiveColor marks call and check actions.
	PassiveColor = lipgloss.Color("#4ECDC4")
	// FoldColor marks folds.
	FoldColor = lipgloss.Color("#95A5A6")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for panel titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// ActionStyle renders the primary recommended action.
	ActionStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	// LabelStyle is used for field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(11)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// BoxStyle is used for the bordered hint panel.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
)

// Icons.
const (
	SuccessIcon = "✓"
	WarningIcon = "⚠️"
	SpadeIcon   = "♠"
)

// ActionColor returns the color used for an action kind.
func ActionColor(kind model.ActionKind) lipgloss.Color {
	switch kind {
	case model.ActionRaise, model.ActionBet:
		return AggressiveColor
	case model.ActionCall, model.ActionCheck:
		return PassiveColor
	default:
		return FoldColor
	}
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatTitle formats a title with the spade icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(SpadeIcon + " " + title)
}

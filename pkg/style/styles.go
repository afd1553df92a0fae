package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	PathStyle    = lipgloss.NewStyle().Foreground(PathColor).Italic(true)

	ProfileStyle    = lipgloss.NewStyle().Foreground(ProfileColor).Bold(true)
	ModCountStyle   = lipgloss.NewStyle().Foreground(ModCountColor)
	MenuNumberStyle = lipgloss.NewStyle().Foreground(MenuNumberColor).Bold(true)
)

// ErrorIndicator prefixes errors in styled output
var ErrorIndicator = ErrorStyle.Render("✗")

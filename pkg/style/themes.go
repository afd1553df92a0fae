package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. AdaptiveColor switches with the terminal background.
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}

	// Menu entries
	ProfileColor    = lipgloss.AdaptiveColor{Light: "#8B5CF6", Dark: "#A78BFA"}
	ModCountColor   = lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"}
	MenuNumberColor = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"}
)

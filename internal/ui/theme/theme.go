// Package theme provides a semantic color system for the tagfield UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors the tagfield widget draws with.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	// Base colors
	Primary() lipgloss.AdaptiveColor // Main accent (focused borders, titles)
	Info() lipgloss.AdaptiveColor    // Chip background
	Warning() lipgloss.AdaptiveColor // Duplicate flash

	// Text colors
	Text() lipgloss.AdaptiveColor      // Primary text
	TextMuted() lipgloss.AdaptiveColor // Placeholders, de-emphasized text

	// Background colors
	Background() lipgloss.AdaptiveColor          // Main background
	BackgroundSecondary() lipgloss.AdaptiveColor // Highlighted chip

	// Border colors
	BorderNormal() lipgloss.AdaptiveColor // Default borders
}

package theme

import "github.com/charmbracelet/lipgloss"

// CharmTheme implements Theme with the default charm-flavored palette.
type CharmTheme struct{}

func (c CharmTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#5a56e0", Dark: "#7571f9"}
}

func (c CharmTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#00a0a0", Dark: "#04b5b5"}
}

func (c CharmTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#cc7a00", Dark: "#ffb454"}
}

func (c CharmTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}
}

func (c CharmTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#9b9b9b", Dark: "#5c5c5c"}
}

func (c CharmTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1a1a1a"}
}

func (c CharmTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#dcdafd", Dark: "#413f79"}
}

func (c CharmTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#d9d9d9", Dark: "#3c3c3c"}
}

func init() {
	RegisterTheme("charm", CharmTheme{})
}

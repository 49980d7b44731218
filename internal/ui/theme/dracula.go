package theme

import "github.com/charmbracelet/lipgloss"

// Dracula color palette
// https://draculatheme.com/contribute
var dracula = struct {
	Background  string
	CurrentLine string
	Foreground  string
	Comment     string
	Cyan        string
	Orange      string
	Purple      string
}{
	Background:  "#282a36",
	CurrentLine: "#44475a",
	Foreground:  "#f8f8f2",
	Comment:     "#6272a4",
	Cyan:        "#8be9fd",
	Orange:      "#ffb86c",
	Purple:      "#bd93f9",
}

// DraculaTheme implements Theme with the Dracula color palette.
type DraculaTheme struct{}

func (d DraculaTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#7e57c2", Dark: dracula.Purple}
}

func (d DraculaTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#0097a7", Dark: dracula.Cyan}
}

func (d DraculaTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#e65100", Dark: dracula.Orange}
}

func (d DraculaTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#282a36", Dark: dracula.Foreground}
}

func (d DraculaTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#9e9e9e", Dark: dracula.Comment}
}

func (d DraculaTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#fafafa", Dark: dracula.Background}
}

func (d DraculaTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: dracula.CurrentLine}
}

func (d DraculaTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#bdbdbd", Dark: dracula.CurrentLine}
}

func init() {
	RegisterTheme("dracula", DraculaTheme{})
}

// Demo program to visually exercise the TagField widget with the full
// stack: config, theming, recent-tag history, and the glamour help overlay.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"tagfield/internal/config"
	"tagfield/internal/debug"
	"tagfield/internal/history"
	"tagfield/internal/tags"
	"tagfield/internal/ui"
	"tagfield/internal/ui/theme"
)

const helpMarkdown = `# tagfield demo

Type a tag and press **Enter** to add it. Text is split on the configured
delimiters, so pasting or typing ` + "`red, blue, green`" + ` adds three tags.

| Key | Action |
|-----|--------|
| Enter | Add the typed tags |
| Backspace (empty entry) | Navigate into the tag list |
| ← / → | Move between tags |
| Backspace / Delete | Remove the highlighted tag |
| Esc | Back to the text entry |
| ctrl+v | Paste tags from the clipboard |
| ctrl+g | Toggle this help |
| ctrl+c | Quit |

Duplicates flash the existing tag instead of adding. Committed tags are
remembered in the history database and shown as recent suggestions.
`

type model struct {
	field  ui.TagField
	store  *history.Store
	recent []string
	log    []string
	help   string

	showHelp bool
	width    int
}

func (m model) Init() tea.Cmd {
	return m.field.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.field = m.field.WithWidth(msg.Width - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.store != nil {
				_ = m.store.Close()
			}
			return m, tea.Quit
		case "ctrl+g":
			m.showHelp = !m.showHelp
			return m, nil
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

	case ui.TagsAddedMsg:
		m.addLog(fmt.Sprintf("Added: %s", strings.Join(msg.Labels, ", ")))
		m.recordHistory(msg.Labels)
		return m, nil

	case ui.TagRemovedMsg:
		m.addLog(fmt.Sprintf("Removed %q (index %d)", msg.Label, msg.Index))
		return m, nil

	case ui.NavExitMsg:
		if msg.Reason == ui.NavExitTyping {
			m.addLog(fmt.Sprintf("Back to entry, typed %q", msg.Character))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m *model) addLog(entry string) {
	m.log = append(m.log, entry)
	if len(m.log) > 6 {
		m.log = m.log[len(m.log)-6:]
	}
}

func (m *model) recordHistory(labels []string) {
	if m.store == nil {
		return
	}
	ctx := context.Background()
	if err := m.store.Record(ctx, labels...); err != nil {
		debug.Logf("record history: %v", err)
		return
	}
	recent, err := m.store.Recent(ctx, 8)
	if err != nil {
		debug.Logf("load recent tags: %v", err)
		return
	}
	m.recent = recent
}

func (m model) View() string {
	if m.showHelp {
		return m.help
	}

	t := theme.Current()
	titleStyle := lipgloss.NewStyle().Foreground(t.Primary()).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted())
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderNormal()).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("tagfield demo"))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(m.field.View()))
	b.WriteString("\n")

	if len(m.recent) > 0 {
		b.WriteString(mutedStyle.Render("Recent: " + strings.Join(m.recent, ", ")))
		b.WriteString("\n")
	}

	if len(m.log) > 0 {
		b.WriteString("\n")
		for _, entry := range m.log {
			b.WriteString(mutedStyle.Render("• " + entry))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(footerHelp(m.field)))
	b.WriteString("\n")
	return b.String()
}

func footerHelp(f ui.TagField) string {
	var parts []string
	for _, binding := range f.KeyMap().ShortHelp() {
		h := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	parts = append(parts, "ctrl+g help", "ctrl+c quit")
	return strings.Join(parts, " · ")
}

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := debug.Init(config.Debug()); err != nil {
		fmt.Fprintf(os.Stderr, "init debug log: %v\n", err)
		os.Exit(1)
	}
	defer debug.Close()

	if name := config.Theme(); !theme.SetTheme(name) {
		debug.Logf("unknown theme %q, using %q", name, theme.CurrentName())
	}

	delims, err := config.Delimiters()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	splitter := tags.NewSplitter(delims...).
		WithNumericParsing(config.NumericParsing())

	ctrl := tags.New(
		tags.WithMaxTags(config.MaxTags()),
		tags.WithMinTags(config.MinTags()),
		tags.WithAllowDuplicates(config.AllowDuplicates()),
		tags.WithCaseSensitiveDuplicates(config.CaseSensitiveDuplicates()),
	)

	ctx := context.Background()
	var store *history.Store
	var recent []string
	if path, err := config.HistoryPath(); err == nil {
		store, err = history.Open(ctx, path, config.HistoryLimit())
		if err != nil {
			debug.Logf("open history: %v", err)
			store = nil
		}
	}
	if store != nil {
		if r, err := store.Recent(ctx, 8); err == nil {
			recent = r
		}
	}

	field := ui.NewTagField(ctrl).
		WithSplitter(splitter).
		WithWidth(60).
		WithPlaceholder("Type a tag and press Enter...")
	field.Focus()

	help, err := glamour.Render(helpMarkdown, "dark")
	if err != nil {
		help = helpMarkdown
	}

	m := model{
		field:  field,
		store:  store,
		recent: recent,
		help:   help,
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run demo: %v\n", err)
		os.Exit(1)
	}
}

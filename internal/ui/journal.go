// Package ui provides terminal user interface components for the neoflow app.
package ui

import (
	"strings"

	"neoflow/internal/config"
	"neoflow/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// JournalPane shows the append-only victory log and records new wins.
type JournalPane struct {
	journal *storage.JournalStore
	cursor  int
	focused bool
	width   int
	height  int

	adding bool
	input  textinput.Model

	// energy is snapshotted onto new entries; the app keeps it in sync
	// with the habits pane's declared state.
	energy storage.EnergyState

	storage *storage.Storage
	styles  *Styles

	keys      JournalKeyMap
	inputKeys InputKeyMap
}

// NewJournalPane creates a new journal pane.
func NewJournalPane(store *storage.Storage, styles *Styles) *JournalPane {
	return NewJournalPaneWithKeys(store, styles, &config.KeysConfig{})
}

// NewJournalPaneWithKeys creates a new journal pane with custom key bindings.
func NewJournalPaneWithKeys(store *storage.Storage, styles *Styles, keyCfg *config.KeysConfig) *JournalPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "What went well? (#tags allowed)"
	ti.CharLimit = 500
	ti.Width = 40

	return &JournalPane{
		journal:   &storage.JournalStore{},
		input:     ti,
		energy:    storage.StateNormal,
		storage:   store,
		styles:    styles,
		keys:      NewJournalKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// LoadCmd returns a command that loads journal entries asynchronously.
func (p *JournalPane) LoadCmd() tea.Cmd {
	return loadJournalCmd(p.storage)
}

// SetSize sets the pane dimensions.
func (p *JournalPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-10)
}

// SetFocused sets whether this pane is focused.
func (p *JournalPane) SetFocused(focused bool) {
	p.focused = focused
}

// SetEnergySnapshot updates the energy state stamped onto new wins.
func (p *JournalPane) SetEnergySnapshot(state storage.EnergyState) {
	p.energy = state
}

// IsAdding returns whether the win input is open.
func (p *JournalPane) IsAdding() bool {
	return p.adding
}

// StartAdding opens the win input, e.g. after completing every habit.
func (p *JournalPane) StartAdding() tea.Cmd {
	p.adding = true
	p.input.Reset()
	p.input.Focus()
	return textinput.Blink
}

// Update handles messages for the journal pane.
func (p *JournalPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case journalLoadedMsg:
		if msg.store != nil {
			p.journal = msg.store
			if p.cursor >= len(p.journal.Entries) {
				p.cursor = max(0, len(p.journal.Entries)-1)
			}
		}
		return nil

	case winAddedMsg:
		if msg.err == nil {
			return p.LoadCmd()
		}
		return nil
	}

	if p.adding {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, p.inputKeys.Confirm):
				victory, tags := splitTags(p.input.Value())
				p.adding = false
				p.input.Reset()
				p.input.Blur()
				if victory != "" {
					return addWinCmd(p.storage, victory, tags, p.energy)
				}
				return nil

			case key.Matches(keyMsg, p.inputKeys.Cancel):
				p.adding = false
				p.input.Reset()
				p.input.Blur()
				return nil
			}
		}

		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			p.cursor = max(p.cursor-1, 0)
		case tea.MouseButtonWheelDown:
			p.cursor = min(p.cursor+1, max(0, len(p.journal.Entries)-1))
		}
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Down):
			if len(p.journal.Entries) > 0 {
				p.cursor = min(p.cursor+1, len(p.journal.Entries)-1)
			}

		case key.Matches(msg, p.keys.Up):
			if len(p.journal.Entries) > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			p.cursor = max(0, len(p.journal.Entries)-1)

		case key.Matches(msg, p.keys.Add):
			return p.StartAdding()
		}
	}

	return nil
}

// View renders the journal pane, newest entries first.
func (p *JournalPane) View() string {
	var b strings.Builder

	b.WriteString(p.styles.PaneTitleStyle.Render("🏆 JOURNAL"))
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n\n")

	entries := p.journal.Entries
	if len(entries) == 0 && !p.adding {
		b.WriteString(p.styles.StatLabelStyle.Render("  No wins recorded yet."))
		b.WriteString("\n")
		b.WriteString(p.styles.StatLabelStyle.Render("  Press 'a' to log one."))
		b.WriteString("\n")
	}

	// Newest first; cursor 0 is the latest entry.
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		displayIdx := len(entries) - 1 - i

		prefix := "  "
		if displayIdx == p.cursor && p.focused && !p.adding {
			prefix = "▶ "
		}

		line := prefix + p.styles.JournalDateStyle.Render(entry.Date) + "  " + entry.Victory
		if len(entry.Tags) > 0 {
			line += "  " + p.styles.JournalTagStyle.Render("#"+strings.Join(entry.Tags, " #"))
		}
		if entry.EnergySnapshot != "" {
			line += "  " + p.styles.StatLabelStyle.Render("("+string(entry.EnergySnapshot)+")")
		}

		if displayIdx == p.cursor && p.focused && !p.adding {
			line = p.styles.HabitSelectedStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if p.adding {
		b.WriteString("\n")
		b.WriteString("  " + p.styles.InputPromptStyle.Render("Win: ") + p.input.View())
		b.WriteString("\n")
	}

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// splitTags pulls #tags out of a win line. "Shipped the report #work #focus"
// becomes ("Shipped the report", ["work", "focus"]).
func splitTags(raw string) (string, []string) {
	fields := strings.Fields(raw)
	var words []string
	var tags []string
	for _, f := range fields {
		if strings.HasPrefix(f, "#") && len(f) > 1 {
			tags = append(tags, strings.TrimPrefix(f, "#"))
			continue
		}
		words = append(words, f)
	}
	return strings.Join(words, " "), tags
}

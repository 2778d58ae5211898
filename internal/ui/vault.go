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

// Vault add wizard steps.
const (
	vaultStepTitle = iota
	vaultStepType
	vaultStepURL
)

// VaultPane lists strategy resources and handles adding and removing them.
type VaultPane struct {
	vault   *storage.VaultStore
	cursor  int
	focused bool
	width   int
	height  int

	adding     bool
	addStep    int
	input      textinput.Model
	draft      storage.Resource
	typeCursor int

	storage *storage.Storage
	styles  *Styles

	keys      VaultKeyMap
	inputKeys InputKeyMap
}

// NewVaultPane creates a new vault pane.
func NewVaultPane(store *storage.Storage, styles *Styles) *VaultPane {
	return NewVaultPaneWithKeys(store, styles, &config.KeysConfig{})
}

// NewVaultPaneWithKeys creates a new vault pane with custom key bindings.
func NewVaultPaneWithKeys(store *storage.Storage, styles *Styles, keyCfg *config.KeysConfig) *VaultPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "Resource title"
	ti.CharLimit = 120
	ti.Width = 40

	return &VaultPane{
		vault:     &storage.VaultStore{},
		input:     ti,
		storage:   store,
		styles:    styles,
		keys:      NewVaultKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// LoadCmd returns a command that loads vault resources asynchronously.
func (p *VaultPane) LoadCmd() tea.Cmd {
	return loadVaultCmd(p.storage)
}

// SetSize sets the pane dimensions.
func (p *VaultPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-10)
}

// SetFocused sets whether this pane is focused.
func (p *VaultPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsAdding returns whether the add wizard is open.
func (p *VaultPane) IsAdding() bool {
	return p.adding
}

// SelectedResource returns the resource under the cursor, or nil.
func (p *VaultPane) SelectedResource() *storage.Resource {
	if p.cursor < 0 || p.cursor >= len(p.vault.Resources) {
		return nil
	}
	r := p.vault.Resources[p.cursor]
	return &r
}

// Update handles messages for the vault pane.
func (p *VaultPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case vaultLoadedMsg:
		if msg.store != nil {
			p.vault = msg.store
			if p.cursor >= len(p.vault.Resources) {
				p.cursor = max(0, len(p.vault.Resources)-1)
			}
		}
		return nil

	case resourceAddedMsg:
		if msg.err == nil {
			return p.LoadCmd()
		}
		return nil

	case resourceDeletedMsg:
		return p.LoadCmd()
	}

	if p.adding {
		return p.updateAdd(msg)
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
			p.cursor = min(p.cursor+1, max(0, len(p.vault.Resources)-1))
		}
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Down):
			if len(p.vault.Resources) > 0 {
				p.cursor = min(p.cursor+1, len(p.vault.Resources)-1)
			}

		case key.Matches(msg, p.keys.Up):
			if len(p.vault.Resources) > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			p.cursor = max(0, len(p.vault.Resources)-1)

		case key.Matches(msg, p.keys.Add):
			p.startAdd()
			return textinput.Blink

		case key.Matches(msg, p.keys.Delete):
			if r := p.SelectedResource(); r != nil {
				return deleteResourceCmd(p.storage, r.ID)
			}
		}
	}

	return nil
}

// startAdd opens the add wizard at the title step.
func (p *VaultPane) startAdd() {
	p.adding = true
	p.addStep = vaultStepTitle
	p.draft = storage.Resource{}
	p.typeCursor = 0
	p.input.Reset()
	p.input.Placeholder = "Resource title"
	p.input.CharLimit = 120
	p.input.Focus()
}

// resetAddMode returns the pane to normal mode.
func (p *VaultPane) resetAddMode() {
	p.adding = false
	p.addStep = vaultStepTitle
	p.draft = storage.Resource{}
	p.input.Reset()
	p.input.Blur()
}

// updateAdd drives the three-step add wizard: title, type, then an
// optional URL or note body.
func (p *VaultPane) updateAdd(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.addStep != vaultStepType {
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return cmd
		}
		return nil
	}

	if key.Matches(keyMsg, p.inputKeys.Cancel) {
		p.resetAddMode()
		return nil
	}

	switch p.addStep {
	case vaultStepTitle:
		if key.Matches(keyMsg, p.inputKeys.Confirm) {
			title := strings.TrimSpace(p.input.Value())
			if title != "" {
				p.draft.Title = title
				p.addStep = vaultStepType
				p.input.Blur()
			}
			return nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd

	case vaultStepType:
		switch keyMsg.String() {
		case "left", "h", "up", "k":
			p.typeCursor = (p.typeCursor + len(storage.ResourceTypes) - 1) % len(storage.ResourceTypes)
		case "right", "l", "down", "j":
			p.typeCursor = (p.typeCursor + 1) % len(storage.ResourceTypes)
		}
		if key.Matches(keyMsg, p.inputKeys.Confirm) {
			p.draft.Type = storage.ResourceTypes[p.typeCursor]
			p.addStep = vaultStepURL
			p.input.Reset()
			if p.draft.Type == storage.ResourceNote || p.draft.Type == storage.ResourceText {
				p.input.Placeholder = "Content (optional)"
			} else {
				p.input.Placeholder = "URL (optional)"
			}
			p.input.CharLimit = 500
			p.input.Focus()
		}
		return nil

	case vaultStepURL:
		if key.Matches(keyMsg, p.inputKeys.Confirm) {
			value := strings.TrimSpace(p.input.Value())
			res := p.draft
			if res.Type == storage.ResourceNote || res.Type == storage.ResourceText {
				res.Content = value
			} else {
				res.URL = value
			}
			p.resetAddMode()
			return addResourceCmd(p.storage, res)
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	return nil
}

// View renders the vault pane.
func (p *VaultPane) View() string {
	var b strings.Builder

	b.WriteString(p.styles.PaneTitleStyle.Render("📚 VAULT"))
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n\n")

	if len(p.vault.Resources) == 0 && !p.adding {
		b.WriteString(p.styles.StatLabelStyle.Render("  Vault is empty."))
		b.WriteString("\n")
		b.WriteString(p.styles.StatLabelStyle.Render("  Press 'a' to add a resource."))
		b.WriteString("\n")
	}

	for i, res := range p.vault.Resources {
		prefix := "  "
		if i == p.cursor && p.focused && !p.adding {
			prefix = "▶ "
		}

		line := prefix + p.styles.VaultTypeStyle.Render("["+string(res.Type)+"]") + " " + res.Title
		if res.URL != "" {
			line += "  " + p.styles.VaultURLStyle.Render(truncateText(res.URL, 30))
		}

		if i == p.cursor && p.focused && !p.adding {
			line = p.styles.HabitSelectedStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if p.adding {
		b.WriteString("\n")
		b.WriteString(p.renderAddWizard())
	}

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// renderAddWizard renders the current step of the add flow.
func (p *VaultPane) renderAddWizard() string {
	var b strings.Builder

	switch p.addStep {
	case vaultStepTitle:
		b.WriteString("  " + p.styles.InputPromptStyle.Render("Title: ") + p.input.View())

	case vaultStepType:
		b.WriteString("  " + p.styles.InputPromptStyle.Render("Type: "))
		var parts []string
		for i, t := range storage.ResourceTypes {
			label := string(t)
			if i == p.typeCursor {
				parts = append(parts, p.styles.EnergyBarStyle.Render("["+label+"]"))
			} else {
				parts = append(parts, p.styles.StatLabelStyle.Render(label))
			}
		}
		b.WriteString(strings.Join(parts, " "))

	case vaultStepURL:
		label := "URL: "
		if p.draft.Type == storage.ResourceNote || p.draft.Type == storage.ResourceText {
			label = "Content: "
		}
		b.WriteString("  " + p.styles.InputPromptStyle.Render(label) + p.input.View())
	}

	b.WriteString("\n")
	return b.String()
}

// Package ui provides terminal user interface components for the neoflow app.
// This file contains the main App model which coordinates all panes and
// routes messages using the Bubble Tea architecture.
package ui

import (
	"fmt"
	"strings"
	"time"

	"neoflow/internal/config"
	"neoflow/internal/notify"
	"neoflow/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PaneID identifies each pane in the application.
type PaneID int

const (
	PaneHabits PaneID = iota
	PaneJournal
	PaneVault
)

// LayoutMode determines how panes are arranged based on terminal width.
type LayoutMode int

const (
	// LayoutWide shows all three panes side-by-side.
	LayoutWide LayoutMode = iota
	// LayoutNarrow shows only the focused pane with a tab bar.
	LayoutNarrow
)

// AppConfig holds user configuration for the app behavior.
type AppConfig struct {
	Keys                      *config.KeysConfig
	ConfirmDeletions          bool
	PromptJournalOnCompletion bool
	ShowOnboarding            bool
	NarrowLayoutThreshold     int

	Notifier        notify.Notifier
	NotifyCelebrate bool
	NotifySound     bool
}

// App is the main application model that coordinates all panes.
type App struct {
	storage     *storage.Storage
	styles      *Styles
	config      *AppConfig
	habitsPane  *HabitsPane
	journalPane *JournalPane
	vaultPane   *VaultPane
	helpOverlay *HelpOverlay
	confirmDel  *confirmDeleteState
	activePane  PaneID
	layoutMode  LayoutMode
	showHelp    bool
	showWelcome bool
	celebrating bool
	width       int
	height      int
	status      string
	statusErr   bool
	statusUntil time.Time
	quitting    bool

	// Key bindings
	keys     GlobalKeyMap
	helpKeys HelpKeyMap

	// Pane positions for mouse click detection (x coordinates)
	habitsPaneStart  int
	habitsPaneEnd    int
	journalPaneStart int
	journalPaneEnd   int
	vaultPaneStart   int
	vaultPaneEnd     int
	contentTop       int // Y coordinate where content starts
}

type confirmDeleteState struct {
	title string
	body  string
	cmd   tea.Cmd
}

// NewApp creates a new application. Data loading is deferred to Init()
// to keep the constructor non-blocking.
func NewApp(store *storage.Storage, styles *Styles, cfg *AppConfig) *App {
	// Use default config if nil
	if cfg == nil {
		cfg = &AppConfig{
			Keys:                      &config.KeysConfig{},
			ConfirmDeletions:          true,
			PromptJournalOnCompletion: true,
			ShowOnboarding:            true,
			NarrowLayoutThreshold:     80,
		}
	}
	if cfg.Keys == nil {
		cfg.Keys = &config.KeysConfig{}
	}

	// Create panes with config-aware key bindings
	habitsPane := NewHabitsPaneWithKeys(store, styles, cfg.Keys)
	journalPane := NewJournalPaneWithKeys(store, styles, cfg.Keys)
	vaultPane := NewVaultPaneWithKeys(store, styles, cfg.Keys)
	helpOverlay := NewHelpOverlay(styles)

	// Determine if we should show welcome screen
	showWelcome := cfg.ShowOnboarding && isFirstRun(store)

	app := &App{
		storage:     store,
		styles:      styles,
		config:      cfg,
		habitsPane:  habitsPane,
		journalPane: journalPane,
		vaultPane:   vaultPane,
		helpOverlay: helpOverlay,
		activePane:  PaneHabits,
		showHelp:    false,
		showWelcome: showWelcome,
		keys:        NewGlobalKeyMap(cfg.Keys),
		helpKeys:    DefaultHelpKeyMap(),
	}

	// Set initial focus
	habitsPane.SetFocused(true)
	journalPane.SetFocused(false)
	vaultPane.SetFocused(false)

	return app
}

// isFirstRun checks if this appears to be the first time running the app.
// The seeded starter habits do not count; only user activity does.
func isFirstRun(store *storage.Storage) bool {
	history, err := store.LoadHistory()
	if err != nil {
		return false
	}
	if len(history) > 0 {
		return false
	}

	journal, err := store.LoadJournal()
	if err != nil {
		return false
	}
	if len(journal.Entries) > 0 {
		return false
	}

	stats, err := store.LoadStats()
	if err != nil {
		return false
	}
	return stats.TotalCompleted == 0
}

// tickMsg is sent periodically for time updates.
type tickMsg time.Time

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the app and loads all data asynchronously.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		a.habitsPane.LoadCmd(),
		a.journalPane.LoadCmd(),
		a.vaultPane.LoadCmd(),
	)
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Route async messages to their panes first (before key handling).
	// This ensures storage operation results are processed regardless
	// of which pane is active.
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.err != nil {
			a.SetStatus("Habits: "+msg.err.Error(), true)
		}
		cmd := a.habitsPane.Update(msg)
		return a, cmd

	case habitAddedMsg:
		if msg.err != nil {
			a.SetStatus("Add habit: "+msg.err.Error(), true)
		} else if msg.habit != nil {
			a.SetStatus("Added "+msg.habit.Name, false)
		}
		cmd := a.habitsPane.Update(msg)
		return a, cmd

	case habitToggledMsg:
		return a.handleHabitToggled(msg)

	case habitDeletedMsg:
		if msg.err != nil {
			a.SetStatus("Delete habit: "+msg.err.Error(), true)
		} else if msg.habit != nil {
			a.SetStatus("Deleted "+msg.habit.Name, false)
		}
		cmd := a.habitsPane.Update(msg)
		return a, cmd

	case habitReorderedMsg:
		if msg.err != nil {
			a.SetStatus("Reorder: "+msg.err.Error(), true)
		}
		cmd := a.habitsPane.Update(msg)
		return a, cmd

	case missedLoggedMsg:
		if msg.err != nil {
			a.SetStatus("Log missed: "+msg.err.Error(), true)
		} else {
			a.SetStatus("Missed reason saved", false)
		}
		cmd := a.habitsPane.Update(msg)
		return a, cmd

	case journalLoadedMsg:
		if msg.err != nil {
			a.SetStatus("Journal: "+msg.err.Error(), true)
		}
		cmd := a.journalPane.Update(msg)
		return a, cmd

	case winAddedMsg:
		if msg.err != nil {
			a.SetStatus("Add win: "+msg.err.Error(), true)
		} else {
			a.SetStatus("Win recorded 🏆", false)
		}
		cmd := a.journalPane.Update(msg)
		return a, cmd

	case vaultLoadedMsg:
		if msg.err != nil {
			a.SetStatus("Vault: "+msg.err.Error(), true)
		}
		cmd := a.vaultPane.Update(msg)
		return a, cmd

	case resourceAddedMsg:
		if msg.err != nil {
			a.SetStatus("Add resource: "+msg.err.Error(), true)
		}
		cmd := a.vaultPane.Update(msg)
		return a, cmd

	case resourceDeletedMsg:
		if msg.err != nil {
			a.SetStatus("Delete resource: "+msg.err.Error(), true)
		}
		cmd := a.vaultPane.Update(msg)
		return a, cmd

	case celebrationExpiredMsg:
		a.celebrating = false
		if a.status != "" && strings.Contains(a.status, "All habits done") {
			a.status = ""
			a.statusUntil = time.Time{}
		}
		return a, nil

	case notifySentMsg:
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.showWelcome {
			a.showWelcome = false
			return a, nil
		}

		if a.confirmDel != nil {
			switch msg.String() {
			case "y", "Y", "enter":
				cmd := a.confirmDel.cmd
				a.confirmDel = nil
				return a, cmd
			case "n", "N", "esc":
				a.confirmDel = nil
				a.SetStatus("Canceled", false)
				return a, nil
			default:
				return a, nil
			}
		}

		// Help overlay takes priority
		if a.showHelp {
			if key.Matches(msg, a.helpKeys.Close) {
				a.showHelp = false
				return a, nil
			}
			return a, nil
		}

		// Check if any pane is in input mode
		inInputMode := a.habitsPane.InInputMode() || a.journalPane.IsAdding() || a.vaultPane.IsAdding()

		if !inInputMode {
			// Confirm deletions (habits/resources) if enabled.
			if a.config.ConfirmDeletions {
				switch a.activePane {
				case PaneHabits:
					if key.Matches(msg, a.habitsPane.keys.Delete) {
						habit := a.habitsPane.SelectedHabit()
						if habit == nil {
							a.SetStatus("No habit selected", true)
							return a, nil
						}
						a.confirmDel = &confirmDeleteState{
							title: "Delete habit?",
							body:  truncateText(habit.Name, 60),
							cmd:   deleteHabitCmd(a.storage, habit.ID),
						}
						return a, nil
					}
				case PaneVault:
					if key.Matches(msg, a.vaultPane.keys.Delete) {
						res := a.vaultPane.SelectedResource()
						if res == nil {
							a.SetStatus("No resource selected", true)
							return a, nil
						}
						a.confirmDel = &confirmDeleteState{
							title: "Delete resource?",
							body:  truncateText(res.Title, 60),
							cmd:   deleteResourceCmd(a.storage, res.ID),
						}
						return a, nil
					}
				}
			}

			// Global keys only when not in input mode
			switch {
			case key.Matches(msg, a.keys.Quit):
				a.quitting = true
				return a, tea.Quit

			case key.Matches(msg, a.keys.Help):
				a.showHelp = true
				return a, nil

			case key.Matches(msg, a.keys.NextPane):
				a.switchPane()
				return a, nil

			case key.Matches(msg, a.keys.Pane1):
				a.setActivePane(PaneHabits)
				return a, nil

			case key.Matches(msg, a.keys.Pane2):
				a.setActivePane(PaneJournal)
				return a, nil

			case key.Matches(msg, a.keys.Pane3):
				a.setActivePane(PaneVault)
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.MouseMsg:
		if a.showWelcome {
			if msg.Action == tea.MouseActionPress {
				a.showWelcome = false
			}
			return a, nil
		}

		if a.confirmDel != nil {
			if msg.Action == tea.MouseActionPress {
				a.confirmDel = nil
				a.SetStatus("Canceled", false)
			}
			return a, nil
		}

		// Any click closes help
		if a.showHelp {
			if msg.Action == tea.MouseActionPress {
				a.showHelp = false
			}
			return a, nil
		}

		// Handle mouse events
		switch msg.Action {
		case tea.MouseActionPress:
			// In narrow mode, check for tab bar clicks
			if a.layoutMode == LayoutNarrow && msg.Y == a.contentTop-1 {
				tabWidth := a.width / 3
				if msg.X < tabWidth {
					a.setActivePane(PaneHabits)
				} else if msg.X < tabWidth*2 {
					a.setActivePane(PaneJournal)
				} else {
					a.setActivePane(PaneVault)
				}
				return a, nil
			}

			// Determine which pane was clicked (in wide mode)
			clickedPane := a.paneAtPosition(msg.X)
			if clickedPane >= 0 && clickedPane != a.activePane {
				a.setActivePane(clickedPane)
			}

			// Forward click to active pane with adjusted coordinates
			if msg.Y >= a.contentTop {
				localMsg := msg
				localMsg.Y = msg.Y - a.contentTop
				// Adjust X for non-habits panes in wide mode
				if a.layoutMode == LayoutWide {
					switch a.activePane {
					case PaneJournal:
						localMsg.X = msg.X - a.journalPaneStart
					case PaneVault:
						localMsg.X = msg.X - a.vaultPaneStart
					}
				}

				switch a.activePane {
				case PaneHabits:
					cmd := a.habitsPane.Update(localMsg)
					return a, cmd
				case PaneJournal:
					cmd := a.journalPane.Update(localMsg)
					return a, cmd
				case PaneVault:
					cmd := a.vaultPane.Update(localMsg)
					return a, cmd
				}
			}

		case tea.MouseActionMotion:
			// Ignore motion events for now

		}

		// Handle scroll wheel
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			localMsg := msg
			localMsg.Y = msg.Y - a.contentTop

			switch a.activePane {
			case PaneHabits:
				cmd := a.habitsPane.Update(localMsg)
				return a, cmd
			case PaneJournal:
				cmd := a.journalPane.Update(localMsg)
				return a, cmd
			case PaneVault:
				cmd := a.vaultPane.Update(localMsg)
				return a, cmd
			}
		}

		return a, nil

	case tickMsg:
		if a.status != "" && !a.statusUntil.IsZero() && time.Now().After(a.statusUntil) {
			a.status = ""
			a.statusErr = false
			a.statusUntil = time.Time{}
		}
		return a, tickCmd()
	}

	// Forward to active pane (only if help is not shown)
	if !a.showHelp {
		switch a.activePane {
		case PaneHabits:
			cmd := a.habitsPane.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		case PaneJournal:
			cmd := a.journalPane.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		case PaneVault:
			cmd := a.vaultPane.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return a, tea.Batch(cmds...)
}

// handleHabitToggled routes a toggle result to the habits pane and, when the
// toggle finished the day, fires the celebration and the journal prompt.
func (a *App) handleHabitToggled(msg habitToggledMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.SetStatus("Toggle habit: "+msg.err.Error(), true)
		cmd := a.habitsPane.Update(msg)
		return a, cmd
	}

	cmds := []tea.Cmd{a.habitsPane.Update(msg)}

	switch msg.result {
	case storage.ToggleCompletedAllForToday, storage.ToggleCompletedAllAndPromptJournal:
		a.celebrating = true
		a.status = "🎉 All habits done for today!"
		a.statusErr = false
		a.statusUntil = time.Now().Add(celebrationTTL)
		cmds = append(cmds, celebrationTimerCmd())

		if a.config.NotifyCelebrate && a.config.Notifier != nil {
			cmds = append(cmds, notifyCelebrateCmd(a.config.Notifier, a.config.NotifySound))
		}

		if msg.result == storage.ToggleCompletedAllAndPromptJournal && a.config.PromptJournalOnCompletion {
			a.setActivePane(PaneJournal)
			a.journalPane.SetEnergySnapshot(a.habitsPane.Energy())
			cmds = append(cmds, a.journalPane.StartAdding())
		}

	case storage.ToggleCompleted:
		a.SetStatus("Done: "+msg.name, false)

	case storage.ToggleUnchecked:
		a.SetStatus("Unchecked: "+msg.name, false)
	}

	return a, tea.Batch(cmds...)
}

// switchPane cycles through panes.
func (a *App) switchPane() {
	switch a.activePane {
	case PaneHabits:
		a.setActivePane(PaneJournal)
	case PaneJournal:
		a.setActivePane(PaneVault)
	case PaneVault:
		a.setActivePane(PaneHabits)
	}
}

// setActivePane sets the active pane and updates focus states.
func (a *App) setActivePane(pane PaneID) {
	a.activePane = pane

	a.habitsPane.SetFocused(pane == PaneHabits)
	a.journalPane.SetFocused(pane == PaneJournal)
	a.vaultPane.SetFocused(pane == PaneVault)

	if pane == PaneJournal {
		a.journalPane.SetEnergySnapshot(a.habitsPane.Energy())
	}
}

// paneAtPosition returns which pane is at the given X coordinate.
// Returns -1 if no pane is at that position.
func (a *App) paneAtPosition(x int) PaneID {
	if a.layoutMode == LayoutNarrow {
		// In narrow mode, return the active pane
		return a.activePane
	}

	if x >= a.habitsPaneStart && x < a.habitsPaneEnd {
		return PaneHabits
	}
	if x >= a.journalPaneStart && x < a.journalPaneEnd {
		return PaneJournal
	}
	if x >= a.vaultPaneStart && x < a.vaultPaneEnd {
		return PaneVault
	}
	return -1
}

// updateLayout recalculates pane sizes based on terminal dimensions.
func (a *App) updateLayout() {
	// Leave room for title bar (2) and help bar (1)
	contentHeight := a.height - 4
	if contentHeight < 10 {
		contentHeight = 10
	}

	// Content starts after title bar (1 line title + 1 line space)
	a.contentTop = 1

	// Update help overlay size
	a.helpOverlay.SetSize(a.width, a.height)

	totalWidth := a.width - 4

	// Determine layout mode based on configured threshold
	threshold := a.config.NarrowLayoutThreshold
	if threshold <= 0 {
		threshold = 80 // Default threshold
	}

	if a.width < threshold {
		// Narrow mode: single focused pane with tab bar
		a.layoutMode = LayoutNarrow

		// In narrow mode, leave room for tab bar (1 line)
		narrowHeight := contentHeight - 1
		if narrowHeight < 8 {
			narrowHeight = 8
		}

		// Give full width to all panes (only focused one will be shown)
		paneWidth := totalWidth
		if paneWidth < 20 {
			paneWidth = 20
		}

		a.habitsPane.SetSize(paneWidth, narrowHeight)
		a.journalPane.SetSize(paneWidth, narrowHeight)
		a.vaultPane.SetSize(paneWidth, narrowHeight)

		// In narrow mode, all panes occupy the same space
		a.habitsPaneStart = 0
		a.habitsPaneEnd = a.width
		a.journalPaneStart = 0
		a.journalPaneEnd = a.width
		a.vaultPaneStart = 0
		a.vaultPaneEnd = a.width
		// Content starts after tab bar in narrow mode
		a.contentTop = 2
	} else {
		// Wide mode: three panes side-by-side. The habit dashboard gets the
		// most room because of the week grid.
		a.layoutMode = LayoutWide

		var habitsWidth, journalWidth, vaultWidth int
		if totalWidth < 120 {
			habitsWidth = (totalWidth * 44) / 100
			journalWidth = (totalWidth * 30) / 100
			vaultWidth = totalWidth - habitsWidth - journalWidth - 2
		} else {
			habitsWidth = min((totalWidth*45)/100, 70)
			journalWidth = min((totalWidth*30)/100, 48)
			vaultWidth = min(totalWidth-habitsWidth-journalWidth-2, 45)
		}

		a.habitsPane.SetSize(habitsWidth, contentHeight)
		a.journalPane.SetSize(journalWidth, contentHeight)
		a.vaultPane.SetSize(vaultWidth, contentHeight)

		// Calculate pane positions (with 1 space gaps between panes)
		a.habitsPaneStart = 0
		a.habitsPaneEnd = habitsWidth
		a.journalPaneStart = habitsWidth + 1
		a.journalPaneEnd = a.journalPaneStart + journalWidth
		a.vaultPaneStart = a.journalPaneEnd + 1
		a.vaultPaneEnd = a.vaultPaneStart + vaultWidth
	}
}

// View renders the entire app.
func (a *App) View() string {
	if a.quitting {
		return a.renderGoodbye()
	}

	if a.showWelcome {
		return a.renderWelcome()
	}

	if a.confirmDel != nil {
		return a.renderConfirmDelete()
	}

	// Show help overlay if active
	if a.showHelp {
		return a.helpOverlay.View()
	}

	var b strings.Builder

	// Title bar
	titleBar := a.renderTitleBar()
	b.WriteString(titleBar)
	b.WriteString("\n")

	// Main content - switch based on layout mode
	switch a.layoutMode {
	case LayoutNarrow:
		b.WriteString(a.renderNarrowContent())
	default:
		b.WriteString(a.renderWideContent())
	}
	b.WriteString("\n")

	// Help bar
	helpBar := a.renderHelpBar()
	b.WriteString(helpBar)

	return b.String()
}

func (a *App) renderWelcome() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorPrimary).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorPrimary).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	mutedStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted).
		Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to neoflow"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("Tab switches panes. ? opens help.\n"))
	b.WriteString(bodyStyle.Render("Space checks off today's habit.\n"))
	b.WriteString(bodyStyle.Render("Press 'e' when your energy changes and\n"))
	b.WriteString(bodyStyle.Render("the list adapts to what you can do.\n"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press any key to continue"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) renderConfirmDelete() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorDanger).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorDanger).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.confirmDel.title))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.confirmDel.body))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[y/enter] delete    [n/esc] cancel"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

// renderWideContent renders all three panes side by side.
func (a *App) renderWideContent() string {
	habitsView := a.habitsPane.View()
	journalView := a.journalPane.View()
	vaultView := a.vaultPane.View()

	return lipgloss.JoinHorizontal(lipgloss.Top, habitsView, " ", journalView, " ", vaultView)
}

// renderNarrowContent renders the focused pane with a tab bar.
func (a *App) renderNarrowContent() string {
	var b strings.Builder

	// Tab bar at top
	b.WriteString(a.renderPaneTabs())
	b.WriteString("\n")

	// Only render the active pane
	switch a.activePane {
	case PaneHabits:
		b.WriteString(a.habitsPane.View())
	case PaneJournal:
		b.WriteString(a.journalPane.View())
	case PaneVault:
		b.WriteString(a.vaultPane.View())
	}

	return b.String()
}

// renderPaneTabs renders a tab bar showing available panes.
func (a *App) renderPaneTabs() string {
	// Tab labels
	tabs := []struct {
		id    PaneID
		label string
	}{
		{PaneHabits, "Habits"},
		{PaneJournal, "Journal"},
		{PaneVault, "Vault"},
	}

	// Create tab styles
	activeTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorPrimary).
		Bold(true)
	inactiveTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var parts []string
	for _, tab := range tabs {
		label := tab.label
		if tab.id == a.activePane {
			// Active tab: highlighted with brackets
			label = activeTabStyle.Render("[" + label + "]")
		} else {
			// Inactive tab: muted
			label = inactiveTabStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}

	// Center the tabs
	tabBar := strings.Join(parts, "  ")
	padding := (a.width - lipgloss.Width(tabBar)) / 2
	if padding > 0 {
		tabBar = strings.Repeat(" ", padding) + tabBar
	}

	return tabBar
}

// renderGoodbye shows a nice exit message with today's summary.
func (a *App) renderGoodbye() string {
	done, scheduled := a.habitsPane.TodayProgress()
	stats := a.habitsPane.Stats()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  See you later!\n")
	b.WriteString("\n")

	if scheduled > 0 {
		pct := (done * 100) / scheduled
		b.WriteString(fmt.Sprintf("  Today's habits: %d/%d (%d%%)\n", done, scheduled, pct))
	}
	if stats.TotalCompleted > 0 {
		b.WriteString(fmt.Sprintf("  Level %d · %d XP · best streak %d days\n", stats.Level, stats.XP, stats.LongestStreak))
	}
	b.WriteString("\n")

	return b.String()
}

// renderTitleBar creates the top title bar with progress and XP stats.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleStyle.Render(" neoflow ")

	// Progress summary
	done, scheduled := a.habitsPane.TodayProgress()
	userStats := a.habitsPane.Stats()

	var statsItems []string
	if scheduled > 0 {
		statsItems = append(statsItems, fmt.Sprintf("Today: %d/%d", done, scheduled))
	}
	statsItems = append(statsItems, fmt.Sprintf("Lv %d · %d XP", userStats.Level, userStats.XP))
	if userStats.LongestStreak > 0 {
		statsItems = append(statsItems, fmt.Sprintf("🔥 %d", userStats.LongestStreak))
	}
	stats := a.styles.StatLabelStyle.Render(strings.Join(statsItems, "  "))

	// Celebration flash overrides the middle slot
	var middle string
	if a.celebrating {
		middle = a.styles.CelebrateStyle.Render("🎉 All done!")
	}

	// Current date/time
	now := time.Now()
	dateStr := now.Format("Mon Jan 2 · 15:04")
	date := a.styles.DateStyle.Render(dateStr)

	// Calculate spacing
	titleWidth := lipgloss.Width(title)
	statsWidth := lipgloss.Width(stats)
	middleWidth := lipgloss.Width(middle)
	dateWidth := lipgloss.Width(date)

	usedWidth := titleWidth + statsWidth + middleWidth + dateWidth
	spacerWidth := a.width - usedWidth - 6
	if spacerWidth < 2 {
		spacerWidth = 2
	}

	// Build the title bar
	var parts []string
	parts = append(parts, title)

	if stats != "" {
		parts = append(parts, "  "+stats)
	}

	// Distribute spacing
	leftSpacer := strings.Repeat(" ", spacerWidth/2)
	rightSpacer := strings.Repeat(" ", spacerWidth-spacerWidth/2)

	parts = append(parts, leftSpacer)

	if middle != "" {
		parts = append(parts, middle)
	}

	parts = append(parts, rightSpacer)
	parts = append(parts, date)

	return strings.Join(parts, "")
}

// renderHelpBar creates the bottom help bar with context-sensitive hints.
func (a *App) renderHelpBar() string {
	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		if a.celebrating {
			return a.styles.CelebrateStyle.Render(a.status)
		}
		return a.styles.StatusStyle.Render(a.status)
	}

	// Input mode help
	if a.habitsPane.InInputMode() {
		return a.styles.RenderHelp(
			"enter", "next/save",
			"esc", "cancel",
		)
	}

	if a.journalPane.IsAdding() || a.vaultPane.IsAdding() {
		return a.styles.RenderHelp(
			"enter", "save",
			"esc", "cancel",
		)
	}

	// Normal mode help based on active pane
	switch a.activePane {
	case PaneHabits:
		return a.styles.RenderHelp(
			"a", "add",
			"space", "toggle",
			"m", "missed",
			"e", "energy",
			"s", "sort",
			"tab", "pane",
			"?", "help",
		)
	case PaneJournal:
		return a.styles.RenderHelp(
			"a", "add win",
			"j/k", "nav",
			"tab", "pane",
			"?", "help",
		)
	case PaneVault:
		return a.styles.RenderHelp(
			"a", "add",
			"x", "del",
			"j/k", "nav",
			"tab", "pane",
			"?", "help",
		)
	}

	return ""
}

// SetStatus sets a status message to display to the user.
func (a *App) SetStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	ttl := 5 * time.Second
	if isErr {
		ttl = 8 * time.Second
	}
	a.statusUntil = time.Now().Add(ttl)
}

// Run starts the Bubble Tea program with the given storage backend, styles, and config.
func Run(store *storage.Storage, styles *Styles, cfg *AppConfig) error {
	app := NewApp(store, styles, cfg)
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Enable mouse support
	)
	_, err := p.Run()
	return err
}

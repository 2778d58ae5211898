// Package ui provides terminal user interface components for the neoflow app.
package ui

import (
	"fmt"
	"strings"
	"time"

	"neoflow/internal/config"
	"neoflow/internal/engine"
	"neoflow/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// habitsPaneMode tracks what kind of input the pane is collecting.
type habitsPaneMode int

const (
	habitsModeNormal habitsPaneMode = iota
	habitsModeAdd
	habitsModeMissed
)

// Add wizard steps.
const (
	addStepName = iota
	addStepCategory
	addStepEnergy
	addStepDays
)

// HabitsPane renders the energy-filtered habit dashboard and handles
// completion toggles, miss logging, and reordering.
type HabitsPane struct {
	habitStore *storage.HabitStore
	history    storage.History
	missed     storage.MissedLog
	stats      storage.UserStats

	// rows is the filtered and sorted slice currently on screen.
	rows []storage.Habit

	cursor  int
	focused bool
	width   int
	height  int

	energy   storage.EnergyState
	sortMode engine.SortMode

	mode         habitsPaneMode
	addStep      int
	input        textinput.Model
	draft        storage.Habit
	catCursor    int
	energyCursor int
	daysSel      [7]bool
	dayCursor    int

	storage *storage.Storage
	styles  *Styles

	keys      HabitKeyMap
	inputKeys InputKeyMap
}

// NewHabitsPane creates a new habits pane.
func NewHabitsPane(store *storage.Storage, styles *Styles) *HabitsPane {
	return NewHabitsPaneWithKeys(store, styles, &config.KeysConfig{})
}

// NewHabitsPaneWithKeys creates a new habits pane with custom key bindings.
func NewHabitsPaneWithKeys(store *storage.Storage, styles *Styles, keyCfg *config.KeysConfig) *HabitsPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "Habit name (e.g., Morning Run)"
	ti.CharLimit = 60
	ti.Width = 30

	return &HabitsPane{
		habitStore: &storage.HabitStore{},
		history:    storage.History{},
		missed:     storage.MissedLog{},
		input:      ti,
		energy:     storage.StateNormal,
		sortMode:   engine.SortDefault,
		storage:    store,
		styles:     styles,
		keys:       NewHabitKeyMap(keyCfg),
		inputKeys:  NewInputKeyMap(keyCfg),
	}
}

// LoadCmd returns a command that loads the dashboard data asynchronously.
func (p *HabitsPane) LoadCmd() tea.Cmd {
	return loadDashboardCmd(p.storage)
}

// SetSize sets the pane dimensions.
func (p *HabitsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-10)
}

// SetFocused sets whether this pane is focused.
func (p *HabitsPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *HabitsPane) IsFocused() bool {
	return p.focused
}

// InInputMode reports whether the pane is collecting text or wizard input.
func (p *HabitsPane) InInputMode() bool {
	return p.mode != habitsModeNormal
}

// Energy returns the currently declared energy state.
func (p *HabitsPane) Energy() storage.EnergyState {
	return p.energy
}

// Stats returns the last loaded progression aggregate.
func (p *HabitsPane) Stats() storage.UserStats {
	return p.stats
}

// SelectedHabit returns the habit under the cursor, or nil.
func (p *HabitsPane) SelectedHabit() *storage.Habit {
	if p.cursor < 0 || p.cursor >= len(p.rows) {
		return nil
	}
	h := p.rows[p.cursor]
	return &h
}

// TodayProgress returns completed and scheduled counts for today.
func (p *HabitsPane) TodayProgress() (done, scheduled int) {
	today := p.storage.Today()
	day := storage.GetDay(p.history, today)
	now := p.storage.Now()

	for _, h := range p.habitStore.Habits {
		if !storage.IsScheduled(h, now) {
			continue
		}
		scheduled++
		if day[h.ID] {
			done++
		}
	}
	return done, scheduled
}

// rebuildRows recomputes the visible slice from the energy filter and sort
// mode, keeping the cursor on the same habit where possible.
func (p *HabitsPane) rebuildRows() {
	var selectedID string
	if h := p.SelectedHabit(); h != nil {
		selectedID = h.ID
	}

	streaks := make(map[string]int, len(p.habitStore.Habits))
	now := p.storage.Now()
	for _, h := range p.habitStore.Habits {
		streaks[h.ID] = storage.StreakAt(p.history, h.ID, now)
	}

	p.rows = engine.View(p.habitStore.Habits, p.energy, p.sortMode, streaks)

	p.cursor = 0
	for i, h := range p.rows {
		if h.ID == selectedID {
			p.cursor = i
			break
		}
	}
	if p.cursor >= len(p.rows) {
		p.cursor = max(0, len(p.rows)-1)
	}
}

// Update handles messages for the habits pane.
func (p *HabitsPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	// Handle async messages first
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.err == nil {
			p.habitStore = msg.habits
			p.history = msg.history
			p.missed = msg.missed
			p.stats = msg.stats
			p.rebuildRows()
		}
		return nil

	case habitAddedMsg:
		if msg.err == nil {
			return p.LoadCmd()
		}
		return nil

	case habitToggledMsg, habitDeletedMsg, habitReorderedMsg, missedLoggedMsg:
		return p.LoadCmd()
	}

	if p.mode == habitsModeAdd {
		return p.updateAdd(msg)
	}
	if p.mode == habitsModeMissed {
		return p.updateMissed(msg)
	}

	// Normal mode
	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return p.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Down):
			if len(p.rows) > 0 {
				p.cursor = min(p.cursor+1, len(p.rows)-1)
			}

		case key.Matches(msg, p.keys.Up):
			if len(p.rows) > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			p.cursor = max(0, len(p.rows)-1)

		case key.Matches(msg, p.keys.Add):
			p.startAdd()
			return textinput.Blink

		case key.Matches(msg, p.keys.Toggle):
			if h := p.SelectedHabit(); h != nil {
				return toggleHabitCmd(p.storage, h.ID, h.Name, p.storage.Today())
			}

		case key.Matches(msg, p.keys.Delete):
			if h := p.SelectedHabit(); h != nil {
				return deleteHabitCmd(p.storage, h.ID)
			}

		case key.Matches(msg, p.keys.LogMissed):
			if p.SelectedHabit() != nil {
				p.mode = habitsModeMissed
				p.input.Reset()
				p.input.Placeholder = "Why was it missed?"
				p.input.CharLimit = 200
				p.input.Focus()
				return textinput.Blink
			}

		case key.Matches(msg, p.keys.MoveUp):
			return p.moveSelected(-1)

		case key.Matches(msg, p.keys.MoveDown):
			return p.moveSelected(1)

		case key.Matches(msg, p.keys.CycleEnergy):
			p.energy = nextEnergyState(p.energy)
			p.rebuildRows()

		case key.Matches(msg, p.keys.CycleSort):
			p.sortMode = nextSortMode(p.sortMode)
			p.rebuildRows()
		}
	}

	return cmd
}

// moveSelected moves the habit under the cursor one position in repository
// order. Reordering only makes sense in the default sort.
func (p *HabitsPane) moveSelected(delta int) tea.Cmd {
	if !engine.CanReorder(p.sortMode) {
		return nil
	}
	h := p.SelectedHabit()
	if h == nil {
		return nil
	}

	from := -1
	for i, cand := range p.habitStore.Habits {
		if cand.ID == h.ID {
			from = i
			break
		}
	}
	if from < 0 {
		return nil
	}
	to := from + delta
	if to < 0 || to >= len(p.habitStore.Habits) {
		return nil
	}
	return reorderHabitCmd(p.storage, from, to)
}

// startAdd opens the add wizard at the name step.
func (p *HabitsPane) startAdd() {
	p.mode = habitsModeAdd
	p.addStep = addStepName
	p.draft = storage.Habit{}
	p.catCursor = 0
	p.energyCursor = 2 // Medium
	p.daysSel = [7]bool{true, true, true, true, true, true, true}
	p.dayCursor = 0
	p.input.Reset()
	p.input.Placeholder = "Habit name (e.g., Morning Run)"
	p.input.CharLimit = 60
	p.input.Focus()
}

// resetInputMode returns the pane to normal mode.
func (p *HabitsPane) resetInputMode() {
	p.mode = habitsModeNormal
	p.addStep = addStepName
	p.draft = storage.Habit{}
	p.input.Reset()
	p.input.Blur()
}

// updateAdd drives the four-step add wizard.
func (p *HabitsPane) updateAdd(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.addStep == addStepName {
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return cmd
		}
		return nil
	}

	if key.Matches(keyMsg, p.inputKeys.Cancel) {
		p.resetInputMode()
		return nil
	}

	switch p.addStep {
	case addStepName:
		if key.Matches(keyMsg, p.inputKeys.Confirm) {
			name := strings.TrimSpace(p.input.Value())
			if name != "" {
				p.draft.Name = name
				p.addStep = addStepCategory
				p.input.Blur()
			}
			return nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd

	case addStepCategory:
		switch keyMsg.String() {
		case "left", "h", "up", "k":
			p.catCursor = (p.catCursor + len(storage.Categories) - 1) % len(storage.Categories)
		case "right", "l", "down", "j":
			p.catCursor = (p.catCursor + 1) % len(storage.Categories)
		}
		if key.Matches(keyMsg, p.inputKeys.Confirm) {
			p.draft.Category = storage.Categories[p.catCursor]
			p.addStep = addStepEnergy
		}
		return nil

	case addStepEnergy:
		switch keyMsg.String() {
		case "left", "h", "up", "k":
			p.energyCursor = (p.energyCursor + len(storage.EnergyReqs) - 1) % len(storage.EnergyReqs)
		case "right", "l", "down", "j":
			p.energyCursor = (p.energyCursor + 1) % len(storage.EnergyReqs)
		}
		if key.Matches(keyMsg, p.inputKeys.Confirm) {
			p.draft.EnergyReq = storage.EnergyReqs[p.energyCursor]
			p.addStep = addStepDays
		}
		return nil

	case addStepDays:
		switch keyMsg.String() {
		case "left", "h":
			p.dayCursor = (p.dayCursor + 6) % 7
		case "right", "l":
			p.dayCursor = (p.dayCursor + 1) % 7
		case " ":
			p.daysSel[p.dayCursor] = !p.daysSel[p.dayCursor]
		}
		if key.Matches(keyMsg, p.inputKeys.Confirm) {
			habit := p.draft
			habit.Frequency = selectedDays(p.daysSel)
			habit.TargetStreak = 21
			p.resetInputMode()
			return addHabitCmd(p.storage, habit)
		}
		return nil
	}

	return nil
}

// updateMissed collects a miss reason for the selected habit.
func (p *HabitsPane) updateMissed(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, p.inputKeys.Confirm):
			reason := strings.TrimSpace(p.input.Value())
			h := p.SelectedHabit()
			p.resetInputMode()
			if h != nil && reason != "" {
				return logMissedCmd(p.storage, h.ID, p.storage.Today(), reason)
			}
			return nil

		case key.Matches(keyMsg, p.inputKeys.Cancel):
			p.resetInputMode()
			return nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// handleMouse processes mouse events for the habits pane.
func (p *HabitsPane) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if len(p.rows) == 0 {
		return nil
	}

	// Title (1) + separator (1) + energy line (1) + day labels (1) + blank (1)
	const headerRows = 5

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.cursor = max(p.cursor-1, 0)
		return nil

	case tea.MouseButtonWheelDown:
		p.cursor = min(p.cursor+1, len(p.rows)-1)
		return nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}

		row := msg.Y - headerRows
		if row < 0 || row >= len(p.rows) {
			return nil
		}

		p.cursor = row

		// Click on the checkbox toggles; elsewhere just selects.
		if msg.X < 6 {
			h := p.rows[p.cursor]
			return toggleHabitCmd(p.storage, h.ID, h.Name, p.storage.Today())
		}
	}

	return nil
}

// View renders the habits pane.
func (p *HabitsPane) View() string {
	var b strings.Builder

	title := p.styles.PaneTitleStyle.Render("⚡ HABITS")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styleMutedText(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	b.WriteString(p.renderEnergyLine())
	b.WriteString("\n")
	b.WriteString("  " + p.styleMutedText(p.dayLabels()))
	b.WriteString("\n\n")

	switch {
	case p.mode == habitsModeAdd:
		b.WriteString(p.renderAddWizard())

	case len(p.rows) == 0:
		if len(p.habitStore.Habits) == 0 {
			b.WriteString(p.styleMutedText("  No habits yet."))
			b.WriteString("\n")
			b.WriteString(p.styleMutedText("  Press 'a' to add one."))
		} else {
			b.WriteString(p.styleMutedText("  Nothing fits this energy state."))
			b.WriteString("\n")
			b.WriteString(p.styleMutedText("  Press 'e' to change it."))
		}
		b.WriteString("\n")

	default:
		today := p.storage.Today()
		day := storage.GetDay(p.history, today)
		now := p.storage.Now()

		for i, habit := range p.rows {
			b.WriteString(p.renderHabitRow(i, habit, day, now, today))
			b.WriteString("\n")
		}

		if p.stats.LongestStreak > 0 {
			b.WriteString("\n")
			b.WriteString("  " + p.styles.StatLabelStyle.Render("Best streak: ") +
				p.styles.HabitStreakStyle.Render(fmt.Sprintf("%d days 🔥", p.stats.LongestStreak)))
			b.WriteString("\n")
		}
	}

	if p.mode == habitsModeMissed {
		b.WriteString("\n")
		b.WriteString("  " + p.styles.InputPromptStyle.Render("Missed: ") + p.input.View())
		b.WriteString("\n")
	}

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// renderHabitRow renders one habit line: checkbox, name, week row, streak,
// energy badge.
func (p *HabitsPane) renderHabitRow(i int, habit storage.Habit, day storage.DayLog, now time.Time, today string) string {
	prefix := "  "
	if i == p.cursor && p.focused && p.mode == habitsModeNormal {
		prefix = "▶ "
	}

	checkbox := p.styles.CheckboxPending
	_, missedToday := storage.MissedReason(p.missed, today, habit.ID)
	switch {
	case day[habit.ID]:
		checkbox = p.styles.CheckboxDone
	case missedToday:
		checkbox = p.styles.CheckboxMissed
	}

	name := habit.Name
	if !storage.IsScheduled(habit, now) {
		name = p.styleMutedText(name)
	} else if day[habit.ID] {
		name = p.styles.HabitDoneStyle.Render(name)
	}

	line := fmt.Sprintf("%s%s %s  ", prefix, checkbox, name)
	line += p.renderWeekRow(habit)

	streak := storage.StreakAt(p.history, habit.ID, now)
	if streak > 1 {
		marker := fmt.Sprintf("🔥%d", streak)
		if habit.TargetStreak > 0 && streak >= habit.TargetStreak {
			line += " " + p.styles.TargetMetStyle.Render(marker+"✦")
		} else {
			line += " " + p.styles.HabitStreakStyle.Render(marker)
		}
	}

	line += "  " + p.styles.RenderEnergyBadge(habit.EnergyReq)
	line += " " + p.styles.CategoryStyle.Render(string(habit.Category))

	if i == p.cursor && p.focused && p.mode == habitsModeNormal {
		line = p.styles.HabitSelectedStyle.Render(line)
	}

	return line
}

// renderWeekRow shows the last 7 days: done, skipped, or off-schedule.
func (p *HabitsPane) renderWeekRow(habit storage.Habit) string {
	week := p.storage.WeekRow(p.history, habit.ID)
	now := p.storage.Now()

	cells := make([]string, 0, 7)
	for i, done := range week {
		day := now.AddDate(0, 0, -(6 - i))
		switch {
		case done:
			cells = append(cells, p.styles.WeekDoneIcon)
		case storage.IsScheduled(habit, day):
			cells = append(cells, p.styles.WeekUndoneIcon)
		default:
			cells = append(cells, p.styles.WeekOffDayIcon)
		}
	}
	return strings.Join(cells, " ")
}

// renderEnergyLine shows the declared energy state and sort mode.
func (p *HabitsPane) renderEnergyLine() string {
	var parts []string
	for _, state := range storage.EnergyStates {
		label := string(state)
		if state == p.energy {
			parts = append(parts, p.styles.EnergyBarStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, p.styleMutedText(label))
		}
	}
	line := "  " + strings.Join(parts, " ")
	if p.sortMode != engine.SortDefault {
		line += "   " + p.styleMutedText("sort: "+string(p.sortMode))
	}
	return line
}

// renderAddWizard renders the current step of the add flow.
func (p *HabitsPane) renderAddWizard() string {
	var b strings.Builder

	switch p.addStep {
	case addStepName:
		b.WriteString("  " + p.styles.InputPromptStyle.Render("Name: ") + p.input.View())

	case addStepCategory:
		b.WriteString("  " + p.styles.InputPromptStyle.Render("Category: "))
		var parts []string
		for i, c := range storage.Categories {
			label := string(c)
			if i == p.catCursor {
				parts = append(parts, p.styles.EnergyBarStyle.Render("["+label+"]"))
			} else {
				parts = append(parts, p.styleMutedText(label))
			}
		}
		b.WriteString(strings.Join(parts, " "))

	case addStepEnergy:
		b.WriteString("  " + p.styles.InputPromptStyle.Render("Energy: "))
		var parts []string
		for i, e := range storage.EnergyReqs {
			label := string(e)
			if i == p.energyCursor {
				parts = append(parts, p.styles.EnergyBarStyle.Render("["+label+"]"))
			} else {
				parts = append(parts, p.styleMutedText(label))
			}
		}
		b.WriteString(strings.Join(parts, " "))

	case addStepDays:
		b.WriteString("  " + p.styles.InputPromptStyle.Render("Days: "))
		labels := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
		var parts []string
		for i, label := range labels {
			cell := label
			if p.daysSel[i] {
				cell = p.styles.CelebrateStyle.Render(cell)
			} else {
				cell = p.styleMutedText(cell)
			}
			if i == p.dayCursor {
				cell = "[" + cell + "]"
			} else {
				cell = " " + cell + " "
			}
			parts = append(parts, cell)
		}
		b.WriteString(strings.Join(parts, ""))
		b.WriteString("\n")
		b.WriteString("  " + p.styleMutedText("space toggles, enter saves"))
	}

	b.WriteString("\n")
	return b.String()
}

// styleMutedText applies muted style to text.
func (p *HabitsPane) styleMutedText(s string) string {
	return p.styles.StatLabelStyle.Render(s)
}

// dayLabels returns the column headers for the week row.
func (p *HabitsPane) dayLabels() string {
	now := p.storage.Now()
	days := make([]string, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, -(6 - i))
		days[i] = day.Format("Mon")[:1]
	}
	return "      " + strings.Join(days, " ")
}

// selectedDays converts the wizard's toggle row to weekday indices.
func selectedDays(sel [7]bool) []int {
	days := make([]int, 0, 7)
	for i, on := range sel {
		if on {
			days = append(days, i)
		}
	}
	return days
}

// nextEnergyState advances through the declared-energy cycle.
func nextEnergyState(state storage.EnergyState) storage.EnergyState {
	for i, s := range storage.EnergyStates {
		if s == state {
			return storage.EnergyStates[(i+1)%len(storage.EnergyStates)]
		}
	}
	return storage.StateNormal
}

// nextSortMode advances through the sort-mode cycle.
func nextSortMode(mode engine.SortMode) engine.SortMode {
	for i, m := range engine.SortModes {
		if m == mode {
			return engine.SortModes[(i+1)%len(engine.SortModes)]
		}
	}
	return engine.SortDefault
}

package ui

import (
	"neoflow/internal/config"
	"neoflow/internal/storage"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds all application styles, initialized with theme configuration.
type Styles struct {
	// Colors
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorDanger    lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorAccent    lipgloss.Color
	ColorBg        lipgloss.Color
	ColorBgLight   lipgloss.Color
	ColorText      lipgloss.Color
	ColorTextMuted lipgloss.Color

	// Component styles
	TitleStyle       lipgloss.Style
	DateStyle        lipgloss.Style
	PaneStyle        lipgloss.Style
	PaneFocusedStyle lipgloss.Style
	PaneTitleStyle   lipgloss.Style

	HabitDoneStyle     lipgloss.Style
	HabitPendingStyle  lipgloss.Style
	HabitSelectedStyle lipgloss.Style
	HabitMissedStyle   lipgloss.Style
	CheckboxDone       string
	CheckboxPending    string
	CheckboxMissed     string

	// Week row markers
	WeekDoneIcon     string
	WeekUndoneIcon   string
	WeekOffDayIcon   string
	HabitStreakStyle lipgloss.Style
	TargetMetStyle   lipgloss.Style

	// Energy badge styles, keyed by requirement
	EnergyVeryEasyStyle lipgloss.Style
	EnergyEasyStyle     lipgloss.Style
	EnergyMediumStyle   lipgloss.Style
	EnergyHardStyle     lipgloss.Style

	CategoryStyle  lipgloss.Style
	EnergyBarStyle lipgloss.Style
	CelebrateStyle lipgloss.Style

	JournalDateStyle lipgloss.Style
	JournalTagStyle  lipgloss.Style

	VaultTypeStyle lipgloss.Style
	VaultURLStyle  lipgloss.Style

	HelpStyle    lipgloss.Style
	HelpKeyStyle lipgloss.Style

	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	InputPromptStyle lipgloss.Style
	InputTextStyle   lipgloss.Style

	StatLabelStyle lipgloss.Style
	StatValueStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from the given config.
// If a theme color is empty, it uses the appropriate default.
func NewStyles(cfg *config.Config) *Styles {
	return NewStylesFromTheme(&cfg.Theme)
}

// NewStylesFromTheme creates a new Styles instance from a ThemeConfig.
// If a theme color is empty, it uses the appropriate default.
func NewStylesFromTheme(theme *config.ThemeConfig) *Styles {
	s := &Styles{}

	// Initialize colors from config with fallbacks to defaults
	s.ColorPrimary = colorOrDefault(theme.Primary, "#06b6d4")
	s.ColorSecondary = colorOrDefault(theme.Accent, "#10B981")
	s.ColorMuted = colorOrDefault(theme.Muted, "#6B7280")
	s.ColorDanger = colorOrDefault(theme.Danger, "#f43f5e")

	// Fixed semantic colors (not configurable from theme)
	s.ColorWarning = lipgloss.Color("#F59E0B")
	s.ColorSuccess = lipgloss.Color("#10B981")
	s.ColorAccent = colorOrDefault(theme.Accent, "#8b5cf6")

	// Background and text colors
	s.ColorBg = colorOrDefault(theme.Background, "#1F2937")
	s.ColorBgLight = lipgloss.Color("#374151")
	s.ColorText = colorOrDefault(theme.Text, "#F9FAFB")
	s.ColorTextMuted = lipgloss.Color("#9CA3AF")

	s.initComponentStyles()

	return s
}

// colorOrDefault returns the lipgloss.Color from hex string, or default if empty.
func colorOrDefault(hex, defaultHex string) lipgloss.Color {
	if hex != "" {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(defaultHex)
}

// initComponentStyles initializes all component styles based on the color palette.
func (s *Styles) initComponentStyles() {
	// Title bar
	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorText).
		Background(s.ColorPrimary).
		Padding(0, 1)

	// Date in title bar
	s.DateStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	// Pane styles
	s.PaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorMuted).
		Padding(0, 1)

	s.PaneFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorPrimary).
		Padding(0, 1)

	s.PaneTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorPrimary).
		MarginBottom(1)

	// Habit row styles
	s.HabitDoneStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Strikethrough(true)

	s.HabitPendingStyle = lipgloss.NewStyle().
		Foreground(s.ColorText)

	s.HabitSelectedStyle = lipgloss.NewStyle().
		Background(s.ColorBgLight).
		Foreground(s.ColorText).
		Bold(true)

	s.HabitMissedStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger).
		Italic(true)

	s.CheckboxDone = lipgloss.NewStyle().Foreground(s.ColorSuccess).Render("[✓]")
	s.CheckboxPending = lipgloss.NewStyle().Foreground(s.ColorMuted).Render("[ ]")
	s.CheckboxMissed = lipgloss.NewStyle().Foreground(s.ColorDanger).Render("[−]")

	// Week row markers
	s.WeekDoneIcon = lipgloss.NewStyle().Foreground(s.ColorSuccess).Render("●")
	s.WeekUndoneIcon = lipgloss.NewStyle().Foreground(s.ColorMuted).Render("○")
	s.WeekOffDayIcon = lipgloss.NewStyle().Foreground(s.ColorMuted).Render("·")

	s.HabitStreakStyle = lipgloss.NewStyle().
		Foreground(s.ColorWarning).
		Bold(true)

	s.TargetMetStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess).
		Bold(true)

	// Energy badges, cheapest to hardest
	s.EnergyVeryEasyStyle = lipgloss.NewStyle().Foreground(s.ColorSuccess)
	s.EnergyEasyStyle = lipgloss.NewStyle().Foreground(s.ColorSecondary)
	s.EnergyMediumStyle = lipgloss.NewStyle().Foreground(s.ColorWarning)
	s.EnergyHardStyle = lipgloss.NewStyle().Foreground(s.ColorDanger)

	s.CategoryStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent)

	s.EnergyBarStyle = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Bold(true)

	s.CelebrateStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess).
		Bold(true)

	// Journal styles
	s.JournalDateStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.JournalTagStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent)

	// Vault styles
	s.VaultTypeStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent).
		Bold(true)

	s.VaultURLStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Underline(true)

	// Help bar
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent).
		Bold(true)

	// Status messages
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess).
		Italic(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger).
		Bold(true)

	// Input
	s.InputPromptStyle = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Bold(true)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(s.ColorText)

	// Summary stats
	s.StatLabelStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.StatValueStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Bold(true)
}

// RenderEnergyBadge renders a short colored badge for a habit's energy cost.
func (s *Styles) RenderEnergyBadge(e storage.EnergyReq) string {
	switch e {
	case storage.EnergyVeryEasy:
		return s.EnergyVeryEasyStyle.Render("▁")
	case storage.EnergyEasy:
		return s.EnergyEasyStyle.Render("▃")
	case storage.EnergyMedium:
		return s.EnergyMediumStyle.Render("▅")
	case storage.EnergyHard:
		return s.EnergyHardStyle.Render("█")
	default:
		return " "
	}
}

// RenderHelp renders help text with key bindings using the given styles.
func (s *Styles) RenderHelp(keys ...string) string {
	var result string
	for i := 0; i < len(keys); i += 2 {
		if i > 0 {
			result += "  "
		}
		key := keys[i]
		desc := keys[i+1]
		result += s.HelpKeyStyle.Render("["+key+"]") + " " + s.HelpStyle.Render(desc)
	}
	return result
}

package ui

import (
	"testing"

	"neoflow/internal/config"
	"neoflow/internal/storage"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestNewStyles_UsesThemeColors(t *testing.T) {
	theme := &config.ThemeConfig{
		Primary:    "#FF0000", // Red
		Accent:     "#00FF00", // Green
		Muted:      "#0000FF", // Blue
		Danger:     "#FF00FF", // Magenta
		Background: "#000000", // Black
		Text:       "#FFFFFF", // White
	}

	styles := NewStylesFromTheme(theme)

	if styles.ColorPrimary != lipgloss.Color("#FF0000") {
		t.Errorf("ColorPrimary = %v, want #FF0000", styles.ColorPrimary)
	}
	if styles.ColorAccent != lipgloss.Color("#00FF00") {
		t.Errorf("ColorAccent = %v, want #00FF00", styles.ColorAccent)
	}
	if styles.ColorMuted != lipgloss.Color("#0000FF") {
		t.Errorf("ColorMuted = %v, want #0000FF", styles.ColorMuted)
	}
	if styles.ColorDanger != lipgloss.Color("#FF00FF") {
		t.Errorf("ColorDanger = %v, want #FF00FF", styles.ColorDanger)
	}
	if styles.ColorBg != lipgloss.Color("#000000") {
		t.Errorf("ColorBg = %v, want #000000", styles.ColorBg)
	}
	if styles.ColorText != lipgloss.Color("#FFFFFF") {
		t.Errorf("ColorText = %v, want #FFFFFF", styles.ColorText)
	}
}

func TestNewStyles_UsesDefaults(t *testing.T) {
	theme := &config.ThemeConfig{}

	styles := NewStylesFromTheme(theme)

	if styles.ColorPrimary != lipgloss.Color("#06b6d4") {
		t.Errorf("ColorPrimary = %v, want default #06b6d4", styles.ColorPrimary)
	}
	if styles.ColorAccent != lipgloss.Color("#8b5cf6") {
		t.Errorf("ColorAccent = %v, want default #8b5cf6", styles.ColorAccent)
	}
	if styles.ColorMuted != lipgloss.Color("#6B7280") {
		t.Errorf("ColorMuted = %v, want default #6B7280", styles.ColorMuted)
	}
	if styles.ColorDanger != lipgloss.Color("#f43f5e") {
		t.Errorf("ColorDanger = %v, want default #f43f5e", styles.ColorDanger)
	}
}

func TestNewStyles_ComponentStylesInitialized(t *testing.T) {
	theme := &config.ThemeConfig{
		Primary: "#FF0000",
	}

	styles := NewStylesFromTheme(theme)

	if styles.TitleStyle.GetBackground() != lipgloss.Color("#FF0000") {
		t.Error("TitleStyle should use Primary color for background")
	}

	if styles.PaneFocusedStyle.GetBorderTopForeground() != lipgloss.Color("#FF0000") {
		t.Error("PaneFocusedStyle should use Primary color for border")
	}

	if styles.PaneTitleStyle.GetForeground() != lipgloss.Color("#FF0000") {
		t.Error("PaneTitleStyle should use Primary color for foreground")
	}
}

func TestNewStyles_FromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Theme.Primary = "#123456"

	styles := NewStyles(cfg)

	if styles.ColorPrimary != lipgloss.Color("#123456") {
		t.Errorf("ColorPrimary = %v, want #123456", styles.ColorPrimary)
	}
}

func TestRenderEnergyBadge(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	styles := createTestStyles()

	tests := []struct {
		req  storage.EnergyReq
		want string
	}{
		{storage.EnergyVeryEasy, "▁"},
		{storage.EnergyEasy, "▃"},
		{storage.EnergyMedium, "▅"},
		{storage.EnergyHard, "█"},
		{storage.EnergyReq("bogus"), " "},
	}

	for _, tc := range tests {
		if got := styles.RenderEnergyBadge(tc.req); got != tc.want {
			t.Errorf("RenderEnergyBadge(%s) = %q, want %q", tc.req, got, tc.want)
		}
	}
}

func TestRenderHelp(t *testing.T) {
	styles := createTestStyles()

	output := styles.RenderHelp(
		"a", "add",
		"space", "toggle",
	)

	if len(output) == 0 {
		t.Error("RenderHelp should produce output")
	}
}

package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the process-wide accent palette. It is set once at startup from
// configuration and may be switched explicitly; views read the style values
// on every render so a switch takes effect on the next frame.
type Theme struct {
	Primary lipgloss.Color
	Text    lipgloss.Color
	Border  lipgloss.Color
}

var (
	themeMu sync.RWMutex

	themes = map[string]Theme{
		"dark": {
			Primary: lipgloss.Color("#0EA5E9"),
			Text:    lipgloss.Color("#F3F4F6"),
			Border:  lipgloss.Color("#4B5563"),
		},
		"light": {
			Primary: lipgloss.Color("#0369A1"),
			Text:    lipgloss.Color("#111827"),
			Border:  lipgloss.Color("#9CA3AF"),
		},
	}

	activeTheme = themes["dark"]
)

// SetTheme switches the accent palette. Unknown names are ignored.
func SetTheme(name string) {
	themeMu.Lock()
	defer themeMu.Unlock()
	if t, ok := themes[name]; ok {
		activeTheme = t
		rebuildStyles(t)
	}
}

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorDanger  = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")

	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	dangerStyle  = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)

	selectedItemStyle   lipgloss.Style
	unselectedItemStyle lipgloss.Style

	boxStyle       lipgloss.Style
	dangerBoxStyle lipgloss.Style

	activeButtonStyle   lipgloss.Style
	inactiveButtonStyle lipgloss.Style

	helpStyle    lipgloss.Style
	helpKeyStyle lipgloss.Style

	barStyle      lipgloss.Style
	barEmptyStyle = lipgloss.NewStyle().Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDanger).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1)
)

func rebuildStyles(t Theme) {
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Primary).MarginBottom(1)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	selectedItemStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true).PaddingLeft(2)
	unselectedItemStyle = lipgloss.NewStyle().Foreground(t.Text).PaddingLeft(4)

	boxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	dangerBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDanger).
		Padding(1, 2)

	activeButtonStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Primary).
		Padding(0, 3).
		Bold(true)
	inactiveButtonStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Background(lipgloss.Color("#1F2937")).
		Padding(0, 3)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
	helpKeyStyle = lipgloss.NewStyle().Foreground(t.Primary)

	barStyle = lipgloss.NewStyle().Foreground(t.Primary)
}

func init() {
	rebuildStyles(activeTheme)
}

// FormatBar renders a horizontal chart bar for a percentage width.
func FormatBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	empty := width - filled

	return barStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", empty))
}

// FormatKey formats a help key
func FormatKey(key, description string) string {
	return helpKeyStyle.Render(key) + " " + mutedStyle.Render(description)
}

// FormatCount renders a right-aligned magnitude label.
func FormatCount(value float64) string {
	if value == float64(int64(value)) {
		return fmt.Sprintf("%d", int64(value))
	}
	return fmt.Sprintf("%.1f", value)
}

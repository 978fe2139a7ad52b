package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/habitflare/internal/habits"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorStreak  = lipgloss.Color("#F97316") // Orange

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleHabit = lipgloss.NewStyle().
			Bold(true)

	styleStreak = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorStreak)

	// Heatmap cell styles per aggregate day status.
	styleCellNone = lipgloss.NewStyle().Foreground(colorMuted)
	styleCellLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C4B5FD"))
	styleCellHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6"))
	styleCellFull = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// HabitName formats a habit name.
func (c *CLIFormatter) HabitName(name string) string {
	if c.IsColorEnabled() {
		return styleHabit.Render(name)
	}
	return name
}

// HabitNameColored formats a habit name in the habit's own color key.
func (c *CLIFormatter) HabitNameColored(name, colorKey string) string {
	if c.IsColorEnabled() {
		return ColorStyle(colorKey).Bold(true).Render(name)
	}
	return name
}

// Streak formats a streak figure.
func (c *CLIFormatter) Streak(text string) string {
	if c.IsColorEnabled() {
		return styleStreak.Render(text)
	}
	return text
}

// HeatCell renders a calendar heatmap cell for the given status.
func (c *CLIFormatter) HeatCell(status habits.Status, text string) string {
	if !c.IsColorEnabled() {
		return text
	}
	switch status {
	case habits.StatusFull:
		return styleCellFull.Render(text)
	case habits.StatusHigh:
		return styleCellHigh.Render(text)
	case habits.StatusLow:
		return styleCellLow.Render(text)
	default:
		return styleCellNone.Render(text)
	}
}

// IndicatorDot renders a week-strip indicator dot.
func (c *CLIFormatter) IndicatorDot(indicator habits.Indicator) string {
	dot := "·"
	switch indicator {
	case habits.IndicatorComplete:
		dot = "●"
		if c.IsColorEnabled() {
			return styleSuccess.Render(dot)
		}
	case habits.IndicatorPartial:
		dot = "◐"
		if c.IsColorEnabled() {
			return styleCellHigh.Render(dot)
		}
	default:
		if c.IsColorEnabled() {
			return styleMuted.Render(dot)
		}
	}
	return dot
}

package output

import "github.com/charmbracelet/lipgloss"

// The presentation palette. Habits store symbolic icon and color keys;
// the glyph and terminal color live here, never in the core model. An
// unrecognized key renders as the designated fallback rather than
// failing.

// FallbackIcon is the glyph used for unknown icon keys.
const FallbackIcon = "🔥"

var iconGlyphs = map[string]string{
	"fitness":    "🏋",
	"run":        "🏃",
	"read":       "📖",
	"write":      "✍",
	"meditate":   "🧘",
	"water":      "💧",
	"sleep":      "🌙",
	"code":       "💻",
	"music":      "🎵",
	"language":   "🗣",
	"walk":       "🚶",
	"journal":    "📓",
	"medication": "💊",
	"savings":    "💰",
}

// IconKeys lists the recognized icon keys in display order.
var IconKeys = []string{
	"fitness", "run", "read", "write", "meditate", "water", "sleep",
	"code", "music", "language", "walk", "journal", "medication", "savings",
}

// IconGlyph returns the glyph for an icon key, falling back to
// FallbackIcon for anything unrecognized.
func IconGlyph(key string) string {
	if glyph, ok := iconGlyphs[key]; ok {
		return glyph
	}
	return FallbackIcon
}

var colorValues = map[string]lipgloss.Color{
	"brand":   lipgloss.Color("#7C3AED"),
	"emerald": lipgloss.Color("#10B981"),
	"sky":     lipgloss.Color("#0EA5E9"),
	"amber":   lipgloss.Color("#F59E0B"),
	"rose":    lipgloss.Color("#F43F5E"),
	"indigo":  lipgloss.Color("#6366F1"),
	"teal":    lipgloss.Color("#14B8A6"),
	"orange":  lipgloss.Color("#F97316"),
}

// ColorKeys lists the recognized color keys in display order.
var ColorKeys = []string{
	"brand", "emerald", "sky", "amber", "rose", "indigo", "teal", "orange",
}

// ColorStyle returns a lipgloss style for a habit color key. Unknown
// keys fall back to the brand color.
func ColorStyle(key string) lipgloss.Style {
	color, ok := colorValues[key]
	if !ok {
		color = colorValues["brand"]
	}
	return lipgloss.NewStyle().Foreground(color)
}

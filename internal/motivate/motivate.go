// Package motivate fetches short motivational messages for habit
// streaks. The remote provider is decorative: any failure (missing
// credential, network error, malformed response) degrades to a fixed
// local message and is never surfaced to the user as an error.
package motivate

import (
	"context"
	"fmt"

	"github.com/manav03panchal/habitflare/internal/logging"
)

// Provider produces a short encouragement string for a streak count and
// optional habit name.
type Provider interface {
	Motivate(ctx context.Context, streak int, habitName string) (string, error)
}

// fallbacks are the local messages used when the provider is
// unavailable. Indexed by streak bucket.
var fallbacks = []string{
	"Every day counts. Start the streak today!",
	"Keep pushing! You're doing great.",
	"Consistency is key. Keep the fire burning!",
	"Every day counts. Keep the streak alive!",
}

// Fallback returns the local message for a streak count.
func Fallback(streak int) string {
	switch {
	case streak <= 0:
		return fallbacks[0]
	case streak < 7:
		return fallbacks[1]
	case streak < 30:
		return fallbacks[2]
	default:
		return fallbacks[3]
	}
}

// Fetch asks the provider for a message and falls back locally on any
// failure. A nil provider goes straight to the fallback.
func Fetch(ctx context.Context, p Provider, streak int, habitName string) string {
	if p == nil {
		return Fallback(streak)
	}

	message, err := p.Motivate(ctx, streak, habitName)
	if err != nil {
		logging.DebugLog("motivation provider failed, using fallback", "error", err)
		return Fallback(streak)
	}
	if message == "" {
		return Fallback(streak)
	}
	return message
}

// prompt builds the provider prompt for a streak.
func prompt(streak int, habitName string) string {
	onHabit := ""
	if habitName != "" {
		onHabit = fmt.Sprintf(" on their habit %q", habitName)
	}
	return fmt.Sprintf(
		"I am building a habit tracker. The user has a streak of %d days%s. "+
			"Give me a very short, punchy, inspiring 1-sentence quote or message "+
			"to keep them going. Do not use quotes. Just the text.",
		streak, onHabit)
}

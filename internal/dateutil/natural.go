package dateutil

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// ParseDay resolves a user-supplied day expression to a "YYYY-MM-DD"
// date. It accepts the literal format as well as natural language like
// "today", "yesterday", or "last monday".
func ParseDay(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Today(), nil
	}

	if t, err := Parse(input); err == nil {
		return Format(t), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return "", err
	}
	return Format(result.Time.In(time.Local)), nil
}

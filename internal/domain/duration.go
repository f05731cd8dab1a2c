package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// isoDurationRegex matches the subset of ISO 8601 durations the provider
// emits: "PT" followed by optional hours and optional minutes.
var isoDurationRegex = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// ParseDurationMinutes parses an ISO 8601 duration string such as "PT5H30M"
// into total minutes. Either component may be absent ("PT45M", "PT5H") and
// defaults to zero; the bare string "PT" parses to 0.
//
// Input that does not match the pattern at all returns ErrInvalidDuration.
// Callers must propagate the error rather than coerce to zero: a silently
// zeroed duration would corrupt duration sorting and display.
func ParseDurationMinutes(iso string) (int, error) {
	m := isoDurationRegex.FindStringSubmatch(iso)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, iso)
	}

	hours := 0
	if m[1] != "" {
		h, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, iso)
		}
		hours = h
	}

	minutes := 0
	if m[2] != "" {
		mins, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, iso)
		}
		minutes = mins
	}

	return hours*60 + minutes, nil
}

// FormatDurationMinutes renders total minutes as a compact human-readable
// string ("5h 30m", "45m", "5h").
func FormatDurationMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

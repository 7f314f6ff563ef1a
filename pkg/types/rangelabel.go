package types

import (
	"fmt"
	"strings"
)

// FormatRange renders a pair of times as the stored range form "H:MM AM - H:MM PM".
func FormatRange(from, to TimeOfDay) string {
	return from.Format12() + " - " + to.Format12()
}

// ParseRangeLabel splits a stored range string back into its endpoints.
// Both "9:00 AM - 10:00 AM" and the compact "9:00 AM-10:00 AM" form are accepted.
func ParseRangeLabel(s string) (from, to TimeOfDay, err error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: missing range separator in %q", ErrInvalidFormat, s)
	}

	from, err = ParseTime12(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}

	to, err = ParseTime12(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}

	return from, to, nil
}

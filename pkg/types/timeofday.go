package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat возвращается, когда строка времени не соответствует формату "H:MM AM/PM"
var ErrInvalidFormat = errors.New("types: invalid 12-hour time format")

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// TimeOfDay represents a time of day as minutes since midnight (0-1439).
//
// The only supported source of a TimeOfDay is ParseTime12 — availability and
// appointment times are stored as 12-hour strings and must never be compared
// or sorted as raw strings (lexicographic order breaks on "10:00 AM" vs "9:00 AM").
type TimeOfDay int

var time12Pattern = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// ParseTime12 parses a 12-hour clock string like "1:30 PM" into minutes since midnight.
// Hour must be 1-12, minutes 00-59. Hour 12 AM maps to 0, 12 PM stays 12.
func ParseTime12(s string) (TimeOfDay, error) {
	m := time12Pattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: hour out of range in %q", ErrInvalidFormat, s)
	}

	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return 0, fmt.Errorf("%w: minute out of range in %q", ErrInvalidFormat, s)
	}

	if hour == 12 {
		hour = 0
	}
	if strings.EqualFold(m[3], "PM") {
		hour += 12
	}

	return TimeOfDay(hour*60 + minute), nil
}

// Format12 renders the time back to canonical "H:MM AM/PM" form.
// Round-trip law: ParseTime12(t.Format12()) == t for all t in [0, 1439].
func (t TimeOfDay) Format12() string {
	m := int(t) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}

	hour24 := m / 60
	minute := m % 60

	hour12 := ((hour24 + 11) % 12) + 1
	period := "AM"
	if hour24 >= 12 {
		period = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minute, period)
}

// AddMinutes returns the time shifted forward by n minutes.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	return t + TimeOfDay(n)
}

// Valid reports whether the value is within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t TimeOfDay) String() string {
	return t.Format12()
}

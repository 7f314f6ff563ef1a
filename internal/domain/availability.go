package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

// Weekday is a counseling weekday. Counseling is offered Monday through
// Friday only; Saturday and Sunday are out of domain.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// Weekdays returns all counseling weekdays in order
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// ParseWeekday validates a weekday name, case-insensitively; ok is false
// for weekends and unknown values
func ParseWeekday(s string) (Weekday, bool) {
	for _, day := range Weekdays() {
		if strings.EqualFold(s, string(day)) {
			return day, true
		}
	}
	return "", false
}

// WeekdayFromDate resolves the counseling weekday of a calendar date;
// ok is false on weekends
func WeekdayFromDate(date time.Time) (Weekday, bool) {
	switch date.Weekday() {
	case time.Monday:
		return Monday, true
	case time.Tuesday:
		return Tuesday, true
	case time.Wednesday:
		return Wednesday, true
	case time.Thursday:
		return Thursday, true
	case time.Friday:
		return Friday, true
	}
	return "", false
}

// Range is a contiguous half-open time interval [From, To) within one day.
// A Range is valid only when From < To strictly; zero-length and inverted
// ranges are rejected at normalization, never silently fixed.
type Range struct {
	From types.TimeOfDay
	To   types.TimeOfDay
}

// Label renders the range in the stored "H:MM AM - H:MM PM" form
func (r Range) Label() string {
	return types.FormatRange(r.From, r.To)
}

// Overlaps reports whether two half-open ranges intersect
func (r Range) Overlaps(other Range) bool {
	return r.From < other.To && other.From < r.To
}

// Contains reports whether t falls inside the range
func (r Range) Contains(t types.TimeOfDay) bool {
	return t >= r.From && t < r.To
}

// DayAvailability is one counselor's availability for a single weekday.
// Invariant: Ranges are pairwise disjoint and sorted ascending by From
// (maintained by the merge pipeline).
type DayAvailability struct {
	Weekday Weekday
	Ranges  []Range
}

// AvailabilitySet maps weekday to merged ranges for one counselor
type AvailabilitySet map[Weekday][]Range

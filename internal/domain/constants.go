package domain

import "github.com/m04kA/SMC-CounselingService/pkg/types"

// Slot and capacity constants
const (
	// SlotDurationMinutes fixed bookable unit; only full half-hour units are bookable
	SlotDurationMinutes = 30

	// GroupSlotCapacity hard cap of participants per group-consultation slot
	GroupSlotCapacity = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Selectable time-of-day window for the availability editor.
// The booking UI offers 07:00 through 17:30 in 30-minute steps with the
// 12:00 and 12:30 lunch slots excluded. This is a product rule enforced at
// the input boundary, not inside the normalize/merge pipeline.
const (
	DayWindowStart types.TimeOfDay = 7 * 60     // 7:00 AM
	DayWindowEnd   types.TimeOfDay = 17*60 + 30 // 5:30 PM
	LunchStart     types.TimeOfDay = 12 * 60    // 12:00 PM
	LunchEnd       types.TimeOfDay = 13 * 60    // 1:00 PM
)

// LunchBreak is the half-open lunch interval excluded from the editor
var LunchBreak = Range{From: LunchStart, To: LunchEnd}

// IsSelectableTime reports whether t is offered by the availability editor
func IsSelectableTime(t types.TimeOfDay) bool {
	if t < DayWindowStart || t > DayWindowEnd {
		return false
	}
	if LunchBreak.Contains(t) {
		return false
	}
	return int(t)%SlotDurationMinutes == 0
}

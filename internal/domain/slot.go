package domain

import "github.com/m04kA/SMC-CounselingService/pkg/types"

// CounselorScope selects either one counselor or all of them ("no preference")
type CounselorScope struct {
	ID  int64
	Any bool
}

// SpecificCounselor scope limited to a single counselor
func SpecificCounselor(id int64) CounselorScope {
	return CounselorScope{ID: id}
}

// AnyCounselor scope covering every counselor offering the weekday
func AnyCounselor() CounselorScope {
	return CounselorScope{Any: true}
}

// TimeMatchMode controls how a requested time window is applied to resolved slots
type TimeMatchMode string

const (
	// MatchUnrestricted keeps every resolved slot
	MatchUnrestricted TimeMatchMode = "unrestricted"
	// MatchOverlap keeps slots intersecting the window (half-open overlap test)
	MatchOverlap TimeMatchMode = "overlap"
	// MatchExact keeps only the slot whose bounds equal the window
	MatchExact TimeMatchMode = "exact"
)

// ParseTimeMatchMode maps the timeMode query parameter; ok is false for
// unknown values
func ParseTimeMatchMode(s string) (TimeMatchMode, bool) {
	switch TimeMatchMode(s) {
	case MatchOverlap, MatchExact, MatchUnrestricted:
		return TimeMatchMode(s), true
	case "":
		return MatchUnrestricted, true
	}
	return "", false
}

// AvailableSlot is a bookable half-hour slot together with its remaining
// group capacity. For individual consultations capacity is always 1/1.
type AvailableSlot struct {
	Start             types.TimeOfDay
	Label             string
	RemainingCapacity int
	TotalCapacity     int
}

// IsFull returns true if the slot has no remaining capacity
func (s *AvailableSlot) IsFull() bool {
	return s.RemainingCapacity <= 0
}

// GroupSlotStatus is the capacity report for one group-consultation slot
type GroupSlotStatus struct {
	IsAvailable    bool
	BookedSlots    int
	AvailableSlots int
}

// GroupSlotStatusFor builds the capacity report for a slot holding the given
// number of active group bookings. Remaining capacity never goes below zero
// even if stored data exceeds the cap.
func GroupSlotStatusFor(booked int) GroupSlotStatus {
	available := GroupSlotCapacity - booked
	if available < 0 {
		available = 0
	}
	return GroupSlotStatus{
		IsAvailable:    available > 0,
		BookedSlots:    booked,
		AvailableSlots: available,
	}
}

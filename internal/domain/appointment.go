package domain

import "time"

// ConsultationType distinguishes one-on-one sessions from group sessions
type ConsultationType string

const (
	ConsultationIndividual ConsultationType = "individual"
	ConsultationGroup      ConsultationType = "group"
)

// Valid reports whether the consultation type is known
func (t ConsultationType) Valid() bool {
	return t == ConsultationIndividual || t == ConsultationGroup
}

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusRejected  AppointmentStatus = "rejected"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a counseling appointment in the system
type Appointment struct {
	ID               int64
	StudentID        int64
	CounselorID      int64
	Date             time.Time
	TimeSlot         string // half-hour slot label, e.g. "9:00 AM - 9:30 AM"
	ConsultationType ConsultationType
	Status           AppointmentStatus

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the appointment blocks its slot:
// pending and approved appointments occupy the slot (block individual
// booking, count toward group capacity); rejected, cancelled and completed
// appointments are historical records only.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// IsCancelled returns true if the appointment has been cancelled or rejected
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled || a.Status == StatusRejected
}

// AppointmentsFilter фильтр для выборки записей на консультации
type AppointmentsFilter struct {
	CounselorID      *int64            // Фильтр по консультанту (nil - все консультанты)
	Date             *time.Time        // Фильтр по дате (без времени)
	ConsultationType *ConsultationType // Фильтр по типу консультации (опционально)
	OccupyingOnly    bool              // Только записи, занимающие слот (pending/approved)
}

// OccupyingStatuses statuses that keep a slot occupied
var OccupyingStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
}

// ReleasedStatuses statuses that free the slot for rebooking
var ReleasedStatuses = []AppointmentStatus{
	StatusRejected,
	StatusCancelled,
	StatusCompleted,
}

// ValidStatus reports whether s is a known appointment status.
// The status space is exactly the union of occupying and released statuses.
func ValidStatus(s AppointmentStatus) bool {
	for _, st := range OccupyingStatuses {
		if s == st {
			return true
		}
	}
	for _, st := range ReleasedStatuses {
		if s == st {
			return true
		}
	}
	return false
}

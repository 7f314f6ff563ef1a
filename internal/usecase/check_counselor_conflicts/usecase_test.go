package check_counselor_conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if filter.CounselorID != nil && appt.CounselorID != *filter.CounselorID {
			continue
		}
		if filter.ConsultationType != nil && appt.ConsultationType != *filter.ConsultationType {
			continue
		}
		if filter.OccupyingOnly && !appt.OccupiesSlot() {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func appt(counselorID int64, label string, ctype domain.ConsultationType, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		CounselorID:      counselorID,
		Date:             monday,
		TimeSlot:         label,
		ConsultationType: ctype,
		Status:           status,
	}
}

func TestUseCase_Execute_DetectsIndividualConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		appt(1, "9:00 AM - 9:30 AM", domain.ConsultationIndividual, domain.StatusApproved),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CounselorID: 1, Date: monday, Start: 9 * 60})

	require.NoError(t, err)
	assert.True(t, resp.HasConflict)
	assert.Equal(t, "individual", resp.ConflictType)
}

func TestUseCase_Execute_GroupBookingIsNotAConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		appt(1, "9:00 AM - 9:30 AM", domain.ConsultationGroup, domain.StatusApproved),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CounselorID: 1, Date: monday, Start: 9 * 60})

	require.NoError(t, err)
	assert.False(t, resp.HasConflict)
}

func TestUseCase_Execute_ReleasedStatusesDoNotConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		appt(1, "9:00 AM - 9:30 AM", domain.ConsultationIndividual, domain.StatusCancelled),
		appt(1, "9:00 AM - 9:30 AM", domain.ConsultationIndividual, domain.StatusCompleted),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CounselorID: 1, Date: monday, Start: 9 * 60})

	require.NoError(t, err)
	assert.False(t, resp.HasConflict)
}

func TestUseCase_Execute_OtherCounselorDoesNotConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		appt(2, "9:00 AM - 9:30 AM", domain.ConsultationIndividual, domain.StatusApproved),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CounselorID: 1, Date: monday, Start: 9 * 60})

	require.NoError(t, err)
	assert.False(t, resp.HasConflict)
}

func TestUseCase_Execute_DifferentSlotDoesNotConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		appt(1, "10:00 AM - 10:30 AM", domain.ConsultationIndividual, domain.StatusApproved),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CounselorID: 1, Date: monday, Start: 9 * 60})

	require.NoError(t, err)
	assert.False(t, resp.HasConflict)
}

func TestUseCase_Execute_InvalidCounselor(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CounselorID: 0, Date: monday, Start: 9 * 60})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

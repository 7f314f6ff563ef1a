package check_group_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	"github.com/m04kA/SMC-CounselingService/pkg/ptr"
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

func groupAppt(counselorID int64, label string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		CounselorID:      counselorID,
		Date:             monday,
		TimeSlot:         label,
		ConsultationType: domain.ConsultationGroup,
		Status:           status,
	}
}

func repeatGroupAppts(n int, counselorID int64, label string) []*domain.Appointment {
	out := make([]*domain.Appointment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, groupAppt(counselorID, label, domain.StatusApproved))
	}
	return out
}

func TestUseCase_Execute_EmptySlotFullCapacity(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, Start: 9 * 60})

	require.NoError(t, err)
	assert.True(t, resp.IsAvailable)
	assert.Equal(t, 0, resp.BookedSlots)
	assert.Equal(t, domain.GroupSlotCapacity, resp.AvailableSlots)
}

func TestUseCase_Execute_FourBookedLeavesOne(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: repeatGroupAppts(4, 1, "9:00 AM - 9:30 AM")}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        monday,
		Start:       9 * 60,
		CounselorID: ptr.Ptr(int64(1)),
	})

	require.NoError(t, err)
	assert.True(t, resp.IsAvailable)
	assert.Equal(t, 4, resp.BookedSlots)
	assert.Equal(t, 1, resp.AvailableSlots)
}

func TestUseCase_Execute_FullSlotUnavailable(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: repeatGroupAppts(domain.GroupSlotCapacity, 1, "9:00 AM - 9:30 AM")}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        monday,
		Start:       9 * 60,
		CounselorID: ptr.Ptr(int64(1)),
	})

	require.NoError(t, err)
	assert.False(t, resp.IsAvailable)
	assert.Equal(t, domain.GroupSlotCapacity, resp.BookedSlots)
	assert.Equal(t, 0, resp.AvailableSlots)
}

func TestUseCase_Execute_ReleasedStatusesDoNotCount(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		groupAppt(1, "9:00 AM - 9:30 AM", domain.StatusCancelled),
		groupAppt(1, "9:00 AM - 9:30 AM", domain.StatusRejected),
		groupAppt(1, "9:00 AM - 9:30 AM", domain.StatusCompleted),
		groupAppt(1, "9:00 AM - 9:30 AM", domain.StatusPending),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        monday,
		Start:       9 * 60,
		CounselorID: ptr.Ptr(int64(1)),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.BookedSlots)
	assert.Equal(t, domain.GroupSlotCapacity-1, resp.AvailableSlots)
}

func TestUseCase_Execute_OtherSlotsIgnored(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: repeatGroupAppts(3, 1, "10:00 AM - 10:30 AM")}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        monday,
		Start:       9 * 60,
		CounselorID: ptr.Ptr(int64(1)),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.BookedSlots)
}

func TestUseCase_Execute_WeekendUnavailable(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, nopLogger{})

	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: sunday, Start: 9 * 60})

	require.NoError(t, err)
	assert.False(t, resp.IsAvailable)
	assert.Equal(t, 0, resp.AvailableSlots)
}

func TestUseCase_Execute_MisalignedStartRejected(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: monday, Start: 9*60 + 15})

	assert.ErrorIs(t, err, ErrInvalidTime)
}

package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-CounselingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-CounselingService/pkg/ptr"
)

type fakeAvailabilityRepo struct {
	rows []availabilityRepo.Row
	err  error
}

func (f *fakeAvailabilityRepo) GetByCounselorAndWeekday(_ context.Context, counselorID int64, _ domain.Weekday) ([]availabilityRepo.Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]availabilityRepo.Row, 0)
	for _, row := range f.rows {
		if row.CounselorID == counselorID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ListByWeekday(_ context.Context, _ domain.Weekday) ([]availabilityRepo.Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if filter.CounselorID != nil && appt.CounselorID != *filter.CounselorID {
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

// monday is a known Monday used across tests
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func row(counselorID int64, label string) availabilityRepo.Row {
	return availabilityRepo.Row{CounselorID: counselorID, Weekday: domain.Monday, TimeScheduled: label}
}

func appt(counselorID int64, label string, ctype domain.ConsultationType, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		StudentID:        100,
		CounselorID:      counselorID,
		Date:             monday,
		TimeSlot:         label,
		ConsultationType: ctype,
		Status:           status,
	}
}

func labels(slots []domain.AvailableSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label
	}
	return out
}

func TestUseCase_Execute_MergedRangesExpandToSlots(t *testing.T) {
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{
		row(1, "9:00 AM - 10:00 AM"),
		row(1, "9:30 AM - 11:00 AM"),
	}}
	uc := NewUseCase(avail, &fakeAppointmentRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, CounselorID: ptr.Ptr(int64(1))})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"9:00 AM - 9:30 AM",
		"9:30 AM - 10:00 AM",
		"10:00 AM - 10:30 AM",
		"10:30 AM - 11:00 AM",
	}, labels(resp.Slots))
}

func TestUseCase_Execute_WeekendReturnsEmpty(t *testing.T) {
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 10:00 AM")}}
	uc := NewUseCase(avail, &fakeAppointmentRepo{}, nopLogger{})

	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: saturday})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_CorruptRowSkipped(t *testing.T) {
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{
		row(1, "garbage"),
		row(1, "9:00 AM - 9:30 AM"),
	}}
	uc := NewUseCase(avail, &fakeAppointmentRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, CounselorID: ptr.Ptr(int64(1))})

	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM - 9:30 AM"}, labels(resp.Slots))
}

func TestUseCase_Execute_IndividualBookingRemovesSlot(t *testing.T) {
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 10:00 AM")}}
	appts := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		appt(1, "9:00 AM - 9:30 AM", domain.ConsultationIndividual, domain.StatusPending),
	}}
	uc := NewUseCase(avail, appts, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, CounselorID: ptr.Ptr(int64(1))})

	require.NoError(t, err)
	assert.Equal(t, []string{"9:30 AM - 10:00 AM"}, labels(resp.Slots))
}

func TestUseCase_Execute_CancelledBookingFreesSlot(t *testing.T) {
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 9:30 AM")}}
	appts := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		appt(1, "9:00 AM - 9:30 AM", domain.ConsultationIndividual, domain.StatusCancelled),
	}}
	uc := NewUseCase(avail, appts, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, CounselorID: ptr.Ptr(int64(1))})

	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM - 9:30 AM"}, labels(resp.Slots))
}

func TestUseCase_Execute_AnyCounselorUnionDedups(t *testing.T) {
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{
		row(1, "9:00 AM - 10:00 AM"),
		row(2, "9:30 AM - 10:30 AM"),
	}}
	uc := NewUseCase(avail, &fakeAppointmentRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"9:00 AM - 9:30 AM",
		"9:30 AM - 10:00 AM",
		"10:00 AM - 10:30 AM",
	}, labels(resp.Slots))
}

func TestUseCase_Execute_AnyCounselorSlotFreeIfOneCounselorFree(t *testing.T) {
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{
		row(1, "9:00 AM - 9:30 AM"),
		row(2, "9:00 AM - 9:30 AM"),
	}}
	appts := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		appt(1, "9:00 AM - 9:30 AM", domain.ConsultationIndividual, domain.StatusApproved),
	}}
	uc := NewUseCase(avail, appts, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})

	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM - 9:30 AM"}, labels(resp.Slots))
}

func TestUseCase_Execute_GroupCapacityReported(t *testing.T) {
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 9:30 AM")}}
	appts := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		appt(1, "9:00 AM - 9:30 AM", domain.ConsultationGroup, domain.StatusPending),
		appt(1, "9:00 AM - 9:30 AM", domain.ConsultationGroup, domain.StatusApproved),
	}}
	uc := NewUseCase(avail, appts, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:             monday,
		CounselorID:      ptr.Ptr(int64(1)),
		ConsultationType: domain.ConsultationGroup,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, 3, resp.Slots[0].RemainingCapacity)
	assert.Equal(t, domain.GroupSlotCapacity, resp.Slots[0].TotalCapacity)
}

func TestUseCase_Execute_GroupSlotFullDropped(t *testing.T) {
	bookings := make([]*domain.Appointment, 0, domain.GroupSlotCapacity)
	for i := 0; i < domain.GroupSlotCapacity; i++ {
		bookings = append(bookings, appt(1, "9:00 AM - 9:30 AM", domain.ConsultationGroup, domain.StatusApproved))
	}
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 9:30 AM")}}
	uc := NewUseCase(avail, &fakeAppointmentRepo{appointments: bookings}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:             monday,
		CounselorID:      ptr.Ptr(int64(1)),
		ConsultationType: domain.ConsultationGroup,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_WindowOverlapFilter(t *testing.T) {
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 11:00 AM")}}
	uc := NewUseCase(avail, &fakeAppointmentRepo{}, nopLogger{})

	// Окно 9:15-9:45 пересекает слоты 9:00 и 9:30
	window := &domain.Range{From: 9*60 + 15, To: 9*60 + 45}
	resp, err := uc.Execute(context.Background(), &Request{
		Date:        monday,
		CounselorID: ptr.Ptr(int64(1)),
		Window:      window,
		TimeMode:    domain.MatchOverlap,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM - 9:30 AM", "9:30 AM - 10:00 AM"}, labels(resp.Slots))
}

func TestUseCase_Execute_WindowExactFilter(t *testing.T) {
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 11:00 AM")}}
	uc := NewUseCase(avail, &fakeAppointmentRepo{}, nopLogger{})

	window := &domain.Range{From: 10 * 60, To: 10*60 + 30}
	resp, err := uc.Execute(context.Background(), &Request{
		Date:        monday,
		CounselorID: ptr.Ptr(int64(1)),
		Window:      window,
		TimeMode:    domain.MatchExact,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"10:00 AM - 10:30 AM"}, labels(resp.Slots))
}

func TestUseCase_Execute_InvalidConsultationType(t *testing.T) {
	uc := NewUseCase(&fakeAvailabilityRepo{}, &fakeAppointmentRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: monday, ConsultationType: "webinar"})

	assert.ErrorIs(t, err, ErrInvalidConsultationType)
}

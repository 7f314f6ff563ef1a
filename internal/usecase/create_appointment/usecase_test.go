package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-CounselingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-CounselingService/internal/integrations/accountservice"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	created      []*domain.Appointment
	createErr    error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *appt
	out.ID = int64(len(f.created) + 1)
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
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

type fakeAvailabilityRepo struct {
	rows []availabilityRepo.Row
}

func (f *fakeAvailabilityRepo) GetByCounselorAndWeekday(_ context.Context, counselorID int64, _ domain.Weekday) ([]availabilityRepo.Row, error) {
	out := make([]availabilityRepo.Row, 0)
	for _, row := range f.rows {
		if row.CounselorID == counselorID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeAccountClient struct {
	counselor *accountservice.Counselor
	err       error
}

func (f *fakeAccountClient) GetCounselor(_ context.Context, _ int64) (*accountservice.Counselor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counselor, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	today  = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
)

func activeCounselor() *accountservice.Counselor {
	return &accountservice.Counselor{ID: 1, Name: "Dr. Rivera", IsActive: true}
}

func newTestUseCase(appts *fakeAppointmentRepo, avail *fakeAvailabilityRepo, accounts *fakeAccountClient) *UseCase {
	uc := NewUseCase(appts, avail, accounts, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedClock{now: today}
	return uc
}

func row(counselorID int64, label string) availabilityRepo.Row {
	return availabilityRepo.Row{CounselorID: counselorID, Weekday: domain.Monday, TimeScheduled: label}
}

func appt(counselorID int64, label string, ctype domain.ConsultationType, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		StudentID:        200,
		CounselorID:      counselorID,
		Date:             monday,
		TimeSlot:         label,
		ConsultationType: ctype,
		Status:           status,
	}
}

func validRequest() *Request {
	return &Request{
		StudentID:        100,
		CounselorID:      1,
		Date:             monday,
		Start:            9 * 60,
		ConsultationType: domain.ConsultationIndividual,
	}
}

func TestUseCase_Execute_CreatesPendingAppointment(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 10:00 AM")}}
	uc := newTestUseCase(appts, avail, &fakeAccountClient{counselor: activeCounselor()})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "9:00 AM - 9:30 AM", resp.TimeSlot)
	require.Len(t, appts.created, 1)
	assert.Equal(t, domain.StatusPending, appts.created[0].Status)
}

func TestUseCase_Execute_SlotOutsideAvailability(t *testing.T) {
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "2:00 PM - 3:00 PM")}}
	uc := newTestUseCase(&fakeAppointmentRepo{}, avail, &fakeAccountClient{counselor: activeCounselor()})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_IndividualConflictRejected(t *testing.T) {
	appts := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		appt(1, "9:00 AM - 9:30 AM", domain.ConsultationIndividual, domain.StatusPending),
	}}
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 10:00 AM")}}
	uc := newTestUseCase(appts, avail, &fakeAccountClient{counselor: activeCounselor()})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestUseCase_Execute_SixthGroupBookingRejected(t *testing.T) {
	bookings := make([]*domain.Appointment, 0, domain.GroupSlotCapacity)
	for i := 0; i < domain.GroupSlotCapacity; i++ {
		bookings = append(bookings, appt(1, "9:00 AM - 9:30 AM", domain.ConsultationGroup, domain.StatusApproved))
	}
	appts := &fakeAppointmentRepo{appointments: bookings}
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 10:00 AM")}}
	uc := newTestUseCase(appts, avail, &fakeAccountClient{counselor: activeCounselor()})

	req := validRequest()
	req.ConsultationType = domain.ConsultationGroup

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestUseCase_Execute_FifthGroupBookingAccepted(t *testing.T) {
	bookings := make([]*domain.Appointment, 0, 4)
	for i := 0; i < 4; i++ {
		bookings = append(bookings, appt(1, "9:00 AM - 9:30 AM", domain.ConsultationGroup, domain.StatusApproved))
	}
	appts := &fakeAppointmentRepo{appointments: bookings}
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 10:00 AM")}}
	uc := newTestUseCase(appts, avail, &fakeAccountClient{counselor: activeCounselor()})

	req := validRequest()
	req.ConsultationType = domain.ConsultationGroup

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestUseCase_Execute_IndividualBlockedByGroupBooking(t *testing.T) {
	appts := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		appt(1, "9:00 AM - 9:30 AM", domain.ConsultationGroup, domain.StatusApproved),
	}}
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 10:00 AM")}}
	uc := newTestUseCase(appts, avail, &fakeAccountClient{counselor: activeCounselor()})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestUseCase_Execute_CancelledBookingDoesNotBlock(t *testing.T) {
	appts := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		appt(1, "9:00 AM - 9:30 AM", domain.ConsultationIndividual, domain.StatusCancelled),
	}}
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 10:00 AM")}}
	uc := newTestUseCase(appts, avail, &fakeAccountClient{counselor: activeCounselor()})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestUseCase_Execute_WeekendRejected(t *testing.T) {
	avail := &fakeAvailabilityRepo{rows: []availabilityRepo.Row{row(1, "9:00 AM - 10:00 AM")}}
	uc := newTestUseCase(&fakeAppointmentRepo{}, avail, &fakeAccountClient{counselor: activeCounselor()})

	req := validRequest()
	req.Date = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC) // Saturday

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNotCounselingDay)
}

func TestUseCase_Execute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, &fakeAccountClient{counselor: activeCounselor()})

	req := validRequest()
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestUseCase_Execute_CounselorNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, &fakeAccountClient{err: accountservice.ErrCounselorNotFound})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCounselorNotFound)
}

func TestUseCase_Execute_InactiveCounselorRejected(t *testing.T) {
	inactive := &accountservice.Counselor{ID: 1, IsActive: false}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, &fakeAccountClient{counselor: inactive})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCounselorInactive)
}

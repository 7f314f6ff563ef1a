package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

type fakeRepo struct {
	appointments []*domain.Appointment
	counts       map[string]int
	countCalls   int
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	for _, appt := range f.appointments {
		if appt.ID == id {
			return appt, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeRepo) GetByStudent(_ context.Context, studentID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if appt.StudentID != studentID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

func (f *fakeRepo) CountByDay(_ context.Context, _, _ string, _ *int64) (map[string]int, error) {
	f.countCalls++
	return f.counts, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ int64, _ domain.AppointmentStatus) error {
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, _ int64, _ string) error {
	return nil
}

// fakeTxManager пробрасывает вызов без транзакции и считает обращения
type fakeTxManager struct {
	readOnlyCalls int
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	f.readOnlyCalls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func newTestService(repo *fakeRepo) (*Service, *fakeTxManager) {
	txMgr := &fakeTxManager{}
	return NewService(repo, NewStatsCache(time.Minute), txMgr, nopLogger{}), txMgr
}

func studentAppt(id, studentID int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:               id,
		StudentID:        studentID,
		CounselorID:      1,
		Date:             monday,
		TimeSlot:         "9:00 AM - 9:30 AM",
		ConsultationType: domain.ConsultationIndividual,
		Status:           status,
	}
}

func TestGetStudentAppointments(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		studentAppt(1, 42, domain.StatusPending),
		studentAppt(2, 42, domain.StatusCancelled),
		studentAppt(3, 77, domain.StatusApproved),
	}}
	svc, _ := newTestService(repo)

	appts, err := svc.GetStudentAppointments(context.Background(), 42, nil)

	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, int64(1), appts[0].ID)
	assert.Equal(t, int64(2), appts[1].ID)
}

func TestGetStudentAppointments_StatusFilter(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		studentAppt(1, 42, domain.StatusPending),
		studentAppt(2, 42, domain.StatusCancelled),
	}}
	svc, _ := newTestService(repo)

	status := "cancelled"
	appts, err := svc.GetStudentAppointments(context.Background(), 42, &status)

	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, int64(2), appts[0].ID)
}

func TestGetStudentAppointments_InvalidStatus(t *testing.T) {
	svc, _ := newTestService(&fakeRepo{})

	status := "postponed"
	_, err := svc.GetStudentAppointments(context.Background(), 42, &status)

	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetStudentAppointments_MissingStudentID(t *testing.T) {
	svc, _ := newTestService(&fakeRepo{})

	_, err := svc.GetStudentAppointments(context.Background(), 0, nil)

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetMonthStats_ReadOnlyTransaction(t *testing.T) {
	repo := &fakeRepo{counts: map[string]int{"2026-09-07": 3}}
	svc, txMgr := newTestService(repo)

	counts, err := svc.GetMonthStats(context.Background(), 2026, time.September, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, counts["2026-09-07"])
	assert.Equal(t, 1, txMgr.readOnlyCalls)
}

func TestGetMonthStats_CacheSkipsRepository(t *testing.T) {
	repo := &fakeRepo{counts: map[string]int{"2026-09-07": 3}}
	svc, _ := newTestService(repo)

	_, err := svc.GetMonthStats(context.Background(), 2026, time.September, nil)
	require.NoError(t, err)

	_, err = svc.GetMonthStats(context.Background(), 2026, time.September, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.countCalls)
}

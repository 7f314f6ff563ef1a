package get_booked_times

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

type AppointmentsService interface {
	GetBookedTimes(ctx context.Context, date time.Time, counselorID *int64, consultationType *domain.ConsultationType) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_availability

import (
	"context"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

type AvailabilityService interface {
	GetByCounselor(ctx context.Context, counselorID int64) (domain.AvailabilitySet, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_counselors_by_availability

import (
	"context"

	getCounselors "github.com/m04kA/SMC-CounselingService/internal/usecase/get_counselors_by_availability"
)

type GetCounselorsByAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getCounselors.Request) (*getCounselors.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

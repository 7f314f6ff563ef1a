package delete_availability

import (
	"context"
)

type AvailabilityService interface {
	DeleteRange(ctx context.Context, counselorID int64, day, from, to string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

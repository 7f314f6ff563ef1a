package get_month_stats

import (
	"context"
	"time"
)

type AppointmentsService interface {
	GetMonthStats(ctx context.Context, year int, month time.Month, counselorID *int64) (map[string]int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

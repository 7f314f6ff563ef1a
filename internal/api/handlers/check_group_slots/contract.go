package check_group_slots

import (
	"context"

	checkGroupSlots "github.com/m04kA/SMC-CounselingService/internal/usecase/check_group_slots"
)

type CheckGroupSlotsUseCase interface {
	Execute(ctx context.Context, req *checkGroupSlots.Request) (*checkGroupSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

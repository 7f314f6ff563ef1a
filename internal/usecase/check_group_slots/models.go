package check_group_slots

import (
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

// Request модель запроса на проверку емкости группового слота
type Request struct {
	Date        time.Time       // Дата слота
	Start       types.TimeOfDay // Начало получасового слота
	CounselorID *int64          // ID консультанта; nil = суммарно по всем
}

// Response модель ответа с отчетом о емкости слота
type Response struct {
	domain.GroupSlotStatus
}

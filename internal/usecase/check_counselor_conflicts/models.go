package check_counselor_conflicts

import (
	"time"

	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

// Request модель запроса на проверку конфликта у консультанта
type Request struct {
	CounselorID int64           // ID консультанта
	Date        time.Time       // Дата слота
	Start       types.TimeOfDay // Начало получасового слота
}

// Response модель ответа о конфликте
type Response struct {
	HasConflict  bool   // Есть ли блокирующая запись в этом слоте
	ConflictType string // "individual", если конфликт есть
}

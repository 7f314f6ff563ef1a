package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	StudentID        int64                   // ID студента (из заголовка аутентификации)
	CounselorID      int64                   // ID консультанта
	Date             time.Time               // Дата консультации
	Start            types.TimeOfDay         // Начало получасового слота
	ConsultationType domain.ConsultationType // Тип консультации
	Notes            *string                 // Опциональные заметки студента
}

// Response модель ответа с созданной записью
type Response struct {
	ID               int64
	StudentID        int64
	CounselorID      int64
	Date             time.Time
	TimeSlot         string
	ConsultationType string
	Status           string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date             time.Time               // Дата, на которую резолвятся слоты
	CounselorID      *int64                  // ID консультанта; nil = любой консультант
	ConsultationType domain.ConsultationType // Тип консультации (по умолчанию individual)
	Window           *domain.Range           // Опциональное временное окно фильтрации
	TimeMode         domain.TimeMatchMode    // Режим применения окна
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time              // Дата, на которую запрашивались слоты
	Slots []domain.AvailableSlot // Список доступных слотов, отсортирован по началу
}

package get_counselors_by_availability

import (
	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

// Request модель запроса на поиск консультантов по доступности
type Request struct {
	Weekday  domain.Weekday       // День недели (уже отрезолвленный из day или date)
	Window   *domain.Range        // Опциональное временное окно
	TimeMode domain.TimeMatchMode // Режим применения окна
}

// Response модель ответа со списком подходящих консультантов
type Response struct {
	Counselors []Counselor // Отсортированы по ID
}

// Counselor консультант, доступный в запрошенное время
type Counselor struct {
	ID   int64
	Name string
}

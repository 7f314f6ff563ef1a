package update_availability

// Request модель запроса на сохранение недельной доступности
// Для каждого дня выполняется полная замена: присланный набор диапазонов
// нормализуется, пересобирается merge-ом и замещает сохраненный
type Request struct {
	CounselorID int64               // ID консультанта
	Days        []string            // Дни недели, подлежащие замене
	TimesByDay  map[string][]string // День -> диапазоны вида "9:00 AM-11:00 AM"
}

// Response модель ответа с итогами сохранения
type Response struct {
	SavedDays    int // Количество сохраненных дней
	SavedRanges  int // Количество диапазонов после merge
	DroppedItems int // Количество молча отброшенных диапазонов (перевернутые/нечитаемые)
}

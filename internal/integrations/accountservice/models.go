package accountservice

// Counselor модель консультанта из сервиса аккаунтов
type Counselor struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ErrorResponse модель ошибки от сервиса аккаунтов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

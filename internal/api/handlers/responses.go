package handlers

import (
	"encoding/json"
	"net/http"
)

// StatusSuccess и StatusError значения машинно-проверяемого флага status
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse стандартный ответ об ошибке
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RespondJSON пишет произвольный payload с указанным HTTP-статусом
func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondBadRequest пишет 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Status: StatusError, Message: message})
}

// RespondNotFound пишет 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Status: StatusError, Message: message})
}

// RespondConflict пишет 409 с сообщением (занятый слот, переполненная группа)
func RespondConflict(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Status: StatusError, Message: message})
}

// RespondUnauthorized пишет 401 с сообщением
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Status: StatusError, Message: message})
}

// RespondInternalError пишет 500 с фиксированным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{
		Status:  StatusError,
		Message: "внутренняя ошибка сервера",
	})
}

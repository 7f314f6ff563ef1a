package get_student_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
	"github.com/m04kA/SMC-CounselingService/internal/api/middleware"
	"github.com/m04kA/SMC-CounselingService/internal/domain"
	appointmentsService "github.com/m04kA/SMC-CounselingService/internal/service/appointments"
)

const (
	msgUnauthorized  = "требуется аутентификация"
	msgInvalidStatus = "недопустимый статус"
)

// StudentAppointmentsResponse HTTP response model
type StudentAppointmentsResponse struct {
	Status       string        `json:"status"`
	Appointments []Appointment `json:"appointments"`
}

// Appointment запись студента в ответе
type Appointment struct {
	ID                 int64   `json:"id"`
	CounselorID        int64   `json:"counselor_id"`
	Date               string  `json:"date"`
	TimeSlot           string  `json:"time_slot"`
	ConsultationType   string  `json:"consultation_type"`
	AppointmentState   string  `json:"appointment_status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/my
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/my - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var status *string
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status = &statusStr
	}

	appts, err := h.service.GetStudentAppointments(r.Context(), studentID, status)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidStatus):
			h.logger.Warn("GET /appointments/my - Invalid status filter: student=%d", studentID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /appointments/my - Failed: student=%d, error=%v", studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/my - %d appointments: student=%d", len(appts), studentID)
	handlers.RespondJSON(w, http.StatusOK, FromAppointments(appts))
}

// FromAppointments конвертирует записи в HTTP response
func FromAppointments(appts []*domain.Appointment) *StudentAppointmentsResponse {
	out := make([]Appointment, len(appts))
	for i, appt := range appts {
		out[i] = Appointment{
			ID:                 appt.ID,
			CounselorID:        appt.CounselorID,
			Date:               appt.Date.Format(domain.DateFormat),
			TimeSlot:           appt.TimeSlot,
			ConsultationType:   string(appt.ConsultationType),
			AppointmentState:   string(appt.Status),
			Notes:              appt.Notes,
			CancellationReason: appt.CancellationReason,
			CreatedAt:          appt.CreatedAt.Format(time.RFC3339),
		}
	}

	return &StudentAppointmentsResponse{
		Status:       handlers.StatusSuccess,
		Appointments: out,
	}
}

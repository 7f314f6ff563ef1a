package create_appointment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
	"github.com/m04kA/SMC-CounselingService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-CounselingService/internal/usecase/create_appointment"
)

const (
	msgUnauthorized      = "требуется аутентификация"
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidDateOrTime = "некорректная дата или время"
	msgInvalidType       = "некорректный тип консультации, ожидается individual или group"
	msgCounselorNotFound = "консультант не найден"
	msgCounselorInactive = "консультант временно не принимает записи"
	msgNotCounselingDay  = "консультации проводятся только в будние дни"
	msgDateInPast        = "нельзя записаться на прошедшую дату"
	msgSlotNotAvailable  = "это время недоступно у выбранного консультанта"
	msgSlotConflict      = "это время уже занято"
	msgCapacityExceeded  = "групповой слот заполнен (5/5)"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /appointments - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(studentID)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidConsultationType):
			h.logger.Warn("POST /appointments - Invalid consultation type: student_id=%d", studentID)
			handlers.RespondBadRequest(w, msgInvalidType)

		case errors.Is(err, createAppointment.ErrInvalidTime), errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Validation failed: student_id=%d, error=%v", studentID, err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		case errors.Is(err, createAppointment.ErrCounselorNotFound):
			h.logger.Warn("POST /appointments - Counselor not found: counselor_id=%d", req.CounselorID)
			handlers.RespondNotFound(w, msgCounselorNotFound)

		case errors.Is(err, createAppointment.ErrCounselorInactive):
			h.logger.Warn("POST /appointments - Counselor inactive: counselor_id=%d", req.CounselorID)
			handlers.RespondConflict(w, msgCounselorInactive)

		case errors.Is(err, createAppointment.ErrNotCounselingDay):
			h.logger.Warn("POST /appointments - Not a counseling day: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgNotCounselingDay)

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: counselor_id=%d, date=%s, time=%s",
				req.CounselorID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: counselor_id=%d, date=%s, time=%s",
				req.CounselorID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrCapacityExceeded):
			h.logger.Warn("POST /appointments - Capacity exceeded: counselor_id=%d, date=%s, time=%s",
				req.CounselorID, req.Date, req.Time)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("POST /appointments - Failed to create: student_id=%d, error=%v", studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Created: id=%d, student_id=%d, counselor_id=%d",
		result.ID, studentID, req.CounselorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(handlers.StatusSuccess, result))
}

package update_availability

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
	updateAvailability "github.com/m04kA/SMC-CounselingService/internal/usecase/update_availability"
)

const (
	msgInvalidCounselorID = "некорректный ID консультанта"
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidWeekday     = "недопустимый день недели, ожидается Monday-Friday"
	msgNoDays             = "не указан ни один день"
	msgTimeOutsideWindow  = "время вне рабочего окна 7:00 AM - 6:00 PM"
	msgSaved              = "доступность сохранена"
)

type Handler struct {
	useCase UpdateAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/counselors/{counselorId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	counselorIDStr := vars["counselorId"]
	counselorID, err := strconv.ParseInt(counselorIDStr, 10, 64)
	if err != nil || counselorID <= 0 {
		h.logger.Warn("POST /counselors/{id}/availability - Invalid counselor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCounselorID)
		return
	}

	var req UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /counselors/{id}/availability - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(counselorID))
	if err != nil {
		switch {
		case errors.Is(err, updateAvailability.ErrInvalidWeekday):
			h.logger.Warn("POST /counselors/{id}/availability - Invalid weekday: counselor_id=%d", counselorID)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, updateAvailability.ErrNoDays):
			h.logger.Warn("POST /counselors/{id}/availability - No days: counselor_id=%d", counselorID)
			handlers.RespondBadRequest(w, msgNoDays)

		case errors.Is(err, updateAvailability.ErrTimeOutsideWindow):
			h.logger.Warn("POST /counselors/{id}/availability - Time outside window: counselor_id=%d", counselorID)
			handlers.RespondBadRequest(w, msgTimeOutsideWindow)

		case errors.Is(err, updateAvailability.ErrInvalidInput):
			h.logger.Warn("POST /counselors/{id}/availability - Invalid input: counselor_id=%d, error=%v", counselorID, err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		default:
			h.logger.Error("POST /counselors/{id}/availability - Failed to save: counselor_id=%d, error=%v", counselorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := msgSaved
	if result.DroppedItems > 0 {
		message = fmt.Sprintf("%s, пропущено некорректных диапазонов: %d", msgSaved, result.DroppedItems)
	}

	h.logger.Info("POST /counselors/{id}/availability - Saved: counselor_id=%d, days=%d, ranges=%d, dropped=%d",
		counselorID, result.SavedDays, result.SavedRanges, result.DroppedItems)
	handlers.RespondJSON(w, http.StatusOK, &UpdateAvailabilityResponse{Success: true, Message: message})
}

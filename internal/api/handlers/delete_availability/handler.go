package delete_availability

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
	availabilityService "github.com/m04kA/SMC-CounselingService/internal/service/availability"
)

const (
	msgInvalidCounselorID = "некорректный ID консультанта"
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidWeekday     = "недопустимый день недели, ожидается Monday-Friday"
	msgRangeNotFound      = "диапазон не найден"
	msgDeleted            = "диапазон удален"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/counselors/{counselorId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	counselorIDStr := vars["counselorId"]
	counselorID, err := strconv.ParseInt(counselorIDStr, 10, 64)
	if err != nil || counselorID <= 0 {
		h.logger.Warn("DELETE /counselors/{id}/availability - Invalid counselor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCounselorID)
		return
	}

	var req DeleteAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("DELETE /counselors/{id}/availability - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	err = h.service.DeleteRange(r.Context(), counselorID, req.Day, req.From, req.To)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidWeekday):
			h.logger.Warn("DELETE /counselors/{id}/availability - Invalid weekday %q: counselor_id=%d", req.Day, counselorID)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("DELETE /counselors/{id}/availability - Invalid input: counselor_id=%d, error=%v", counselorID, err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		case errors.Is(err, availabilityService.ErrRangeNotFound):
			h.logger.Warn("DELETE /counselors/{id}/availability - Range not found: counselor_id=%d, day=%s, from=%s, to=%s",
				counselorID, req.Day, req.From, req.To)
			handlers.RespondNotFound(w, msgRangeNotFound)

		default:
			h.logger.Error("DELETE /counselors/{id}/availability - Failed to delete: counselor_id=%d, error=%v", counselorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /counselors/{id}/availability - Range deleted: counselor_id=%d, day=%s, from=%s, to=%s",
		counselorID, req.Day, req.From, req.To)
	handlers.RespondJSON(w, http.StatusOK, &DeleteAvailabilityResponse{Success: true, Message: msgDeleted})
}

package get_availability

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
)

const (
	msgInvalidCounselorID = "некорректный ID консультанта"
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

// Handle GET /api/v1/counselors/{counselorId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	counselorIDStr := vars["counselorId"]
	counselorID, err := strconv.ParseInt(counselorIDStr, 10, 64)
	if err != nil || counselorID <= 0 {
		h.logger.Warn("GET /counselors/{id}/availability - Invalid counselor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCounselorID)
		return
	}

	set, err := h.service.GetByCounselor(r.Context(), counselorID)
	if err != nil {
		h.logger.Error("GET /counselors/{id}/availability - Failed to get availability: counselor_id=%d, error=%v",
			counselorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /counselors/{id}/availability - Availability retrieved: counselor_id=%d", counselorID)
	handlers.RespondJSON(w, http.StatusOK, FromAvailabilitySet(set))
}

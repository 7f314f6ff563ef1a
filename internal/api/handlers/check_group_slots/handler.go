package check_group_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
	"github.com/m04kA/SMC-CounselingService/internal/domain"
	checkGroupSlots "github.com/m04kA/SMC-CounselingService/internal/usecase/check_group_slots"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingTime = "время обязательно"
	msgInvalidTime = "некорректный формат времени, ожидается H:MM AM/PM"
	msgInvalidID   = "некорректный ID консультанта"
)

// GroupSlotsResponse HTTP response model
type GroupSlotsResponse struct {
	Status         string `json:"status"`
	IsAvailable    bool   `json:"isAvailable"`
	BookedSlots    int    `json:"bookedSlots"`
	AvailableSlots int    `json:"availableSlots"`
}

type Handler struct {
	useCase CheckGroupSlotsUseCase
	logger  Logger
}

func NewHandler(useCase CheckGroupSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/check-group-slots
// Query params: date (required), time (required, начало слота), counselor_id
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments/check-group-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /appointments/check-group-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	timeStr := query.Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /appointments/check-group-slots - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}
	start, err := types.ParseTime12(timeStr)
	if err != nil {
		h.logger.Warn("GET /appointments/check-group-slots - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	var counselorID *int64
	if idStr := query.Get("counselor_id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /appointments/check-group-slots - Invalid counselor ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)
			return
		}
		counselorID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &checkGroupSlots.Request{
		Date:        date,
		Start:       start,
		CounselorID: counselorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkGroupSlots.ErrInvalidTime):
			h.logger.Warn("GET /appointments/check-group-slots - Invalid slot time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, checkGroupSlots.ErrInvalidInput):
			h.logger.Warn("GET /appointments/check-group-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("GET /appointments/check-group-slots - Failed: date=%s, time=%s, error=%v",
				dateStr, timeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/check-group-slots - date=%s, time=%s, available=%d/%d",
		dateStr, timeStr, result.AvailableSlots, domain.GroupSlotCapacity)
	handlers.RespondJSON(w, http.StatusOK, &GroupSlotsResponse{
		Status:         handlers.StatusSuccess,
		IsAvailable:    result.IsAvailable,
		BookedSlots:    result.BookedSlots,
		AvailableSlots: result.AvailableSlots,
	})
}

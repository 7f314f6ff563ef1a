package check_counselor_conflicts

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
	"github.com/m04kA/SMC-CounselingService/internal/domain"
	checkConflicts "github.com/m04kA/SMC-CounselingService/internal/usecase/check_counselor_conflicts"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

const (
	msgMissingCounselorID = "ID консультанта обязателен"
	msgInvalidCounselorID = "некорректный ID консультанта"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingTime        = "время обязательно"
	msgInvalidTime        = "некорректный формат времени, ожидается H:MM AM/PM"
	msgConflict           = "у консультанта уже есть индивидуальная запись на это время"
)

// ConflictResponse HTTP response model
type ConflictResponse struct {
	Status       string `json:"status"`
	HasConflict  bool   `json:"hasConflict"`
	Message      string `json:"message,omitempty"`
	ConflictType string `json:"conflictType,omitempty"`
}

type Handler struct {
	useCase CheckCounselorConflictsUseCase
	logger  Logger
}

func NewHandler(useCase CheckCounselorConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/check-conflicts
// Query params: counselor_id (required), date (required), time (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	idStr := query.Get("counselor_id")
	if idStr == "" {
		h.logger.Warn("GET /appointments/check-conflicts - Missing counselor ID")
		handlers.RespondBadRequest(w, msgMissingCounselorID)
		return
	}
	counselorID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || counselorID <= 0 {
		h.logger.Warn("GET /appointments/check-conflicts - Invalid counselor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCounselorID)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments/check-conflicts - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /appointments/check-conflicts - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	timeStr := query.Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /appointments/check-conflicts - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}
	start, err := types.ParseTime12(timeStr)
	if err != nil {
		h.logger.Warn("GET /appointments/check-conflicts - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkConflicts.Request{
		CounselorID: counselorID,
		Date:        date,
		Start:       start,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkConflicts.ErrInvalidTime):
			h.logger.Warn("GET /appointments/check-conflicts - Invalid slot time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, checkConflicts.ErrInvalidInput):
			h.logger.Warn("GET /appointments/check-conflicts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCounselorID)

		default:
			h.logger.Error("GET /appointments/check-conflicts - Failed: counselor_id=%d, date=%s, error=%v",
				counselorID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &ConflictResponse{
		Status:       handlers.StatusSuccess,
		HasConflict:  result.HasConflict,
		ConflictType: result.ConflictType,
	}
	if result.HasConflict {
		response.Message = msgConflict
	}

	h.logger.Info("GET /appointments/check-conflicts - counselor_id=%d, date=%s, conflict=%t",
		counselorID, dateStr, result.HasConflict)
	handlers.RespondJSON(w, http.StatusOK, response)
}

package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
	"github.com/m04kA/SMC-CounselingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CounselingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidID       = "некорректный ID консультанта"
	msgInvalidType     = "некорректный тип консультации, ожидается individual или group"
	msgInvalidTime     = "некорректный формат времени, ожидается H:MM AM/PM"
	msgInvalidTimeMode = "некорректный time_mode, ожидается overlap или exact"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD), counselor_id, consultation_type,
// from, to, time_mode
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var counselorID *int64
	if idStr := query.Get("counselor_id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /slots - Invalid counselor ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)
			return
		}
		counselorID = &id
	}

	consultationType := domain.ConsultationType(query.Get("consultation_type"))
	if consultationType != "" && !consultationType.Valid() {
		h.logger.Warn("GET /slots - Invalid consultation type: %q", consultationType)
		handlers.RespondBadRequest(w, msgInvalidType)
		return
	}

	window, err := resolveWindow(query.Get("from"), query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid time window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	mode, ok := domain.ParseTimeMatchMode(query.Get("time_mode"))
	if !ok {
		h.logger.Warn("GET /slots - Invalid time_mode: %q", query.Get("time_mode"))
		handlers.RespondBadRequest(w, msgInvalidTimeMode)
		return
	}
	if window != nil && mode == domain.MatchUnrestricted {
		mode = domain.MatchOverlap
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:             date,
		CounselorID:      counselorID,
		ConsultationType: consultationType,
		Window:           window,
		TimeMode:         mode,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidConsultationType):
			h.logger.Warn("GET /slots - Invalid consultation type")
			handlers.RespondBadRequest(w, msgInvalidType)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput), errors.Is(err, getAvailableSlots.ErrInvalidTimeMode):
			h.logger.Warn("GET /slots - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeMode)

		default:
			h.logger.Error("GET /slots - Failed to resolve slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Resolved %d slots: date=%s", len(result.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// resolveWindow строит окно фильтрации из параметров from и to
func resolveWindow(fromStr, toStr string) (*domain.Range, error) {
	if fromStr == "" || toStr == "" {
		return nil, nil
	}
	from, err := types.ParseTime12(fromStr)
	if err != nil {
		return nil, err
	}
	to, err := types.ParseTime12(toStr)
	if err != nil {
		return nil, err
	}
	return &domain.Range{From: from, To: to}, nil
}

package get_counselors_by_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
	"github.com/m04kA/SMC-CounselingService/internal/domain"
	getCounselors "github.com/m04kA/SMC-CounselingService/internal/usecase/get_counselors_by_availability"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

const (
	msgMissingDay      = "требуется параметр day или date"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime     = "некорректный формат времени, ожидается H:MM AM/PM"
	msgInvalidTimeMode = "некорректный timeMode, ожидается overlap или exact"
)

type Handler struct {
	useCase GetCounselorsByAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetCounselorsByAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/counselors/by-availability
// Query params: day или date (обязателен один из двух), time или from+to
// (опциональное окно), timeMode (overlap по умолчанию, exact)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// День недели: из явного day или из календарной даты
	weekday, ok, err := resolveWeekday(query.Get("day"), query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /counselors/by-availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if !ok {
		// Выходной день - ни один консультант не доступен
		h.logger.Info("GET /counselors/by-availability - Non-counseling day requested")
		handlers.RespondJSON(w, http.StatusOK, &CounselorsResponse{
			Status:     handlers.StatusSuccess,
			Counselors: []Counselor{},
		})
		return
	}
	if weekday == "" {
		h.logger.Warn("GET /counselors/by-availability - Missing day and date")
		handlers.RespondBadRequest(w, msgMissingDay)
		return
	}

	// Временное окно: одиночный слот (time) или произвольный интервал (from, to)
	window, err := resolveWindow(query.Get("time"), query.Get("from"), query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /counselors/by-availability - Invalid time window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	mode, ok := domain.ParseTimeMatchMode(query.Get("timeMode"))
	if !ok {
		h.logger.Warn("GET /counselors/by-availability - Invalid timeMode: %q", query.Get("timeMode"))
		handlers.RespondBadRequest(w, msgInvalidTimeMode)
		return
	}
	if window != nil && mode == domain.MatchUnrestricted {
		mode = domain.MatchOverlap
	}

	result, err := h.useCase.Execute(r.Context(), &getCounselors.Request{
		Weekday:  weekday,
		Window:   window,
		TimeMode: mode,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCounselors.ErrInvalidInput), errors.Is(err, getCounselors.ErrInvalidTimeMode):
			h.logger.Warn("GET /counselors/by-availability - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeMode)
		default:
			h.logger.Error("GET /counselors/by-availability - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /counselors/by-availability - Matched %d counselors for %s", len(result.Counselors), weekday)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// resolveWeekday приводит параметры day/date к рабочему дню недели.
// ok=false означает выходной; пустой weekday при ok=true - параметры не заданы
func resolveWeekday(dayStr, dateStr string) (domain.Weekday, bool, error) {
	if dayStr != "" {
		weekday, ok := domain.ParseWeekday(dayStr)
		return weekday, ok, nil
	}
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return "", false, err
		}
		weekday, ok := domain.WeekdayFromDate(date)
		return weekday, ok, nil
	}
	return "", true, nil
}

// resolveWindow строит окно фильтрации из time (одиночный слот) или from+to
func resolveWindow(timeStr, fromStr, toStr string) (*domain.Range, error) {
	if timeStr != "" {
		start, err := types.ParseTime12(timeStr)
		if err != nil {
			return nil, err
		}
		return &domain.Range{From: start, To: start + domain.SlotDurationMinutes}, nil
	}
	if fromStr != "" && toStr != "" {
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
	return nil, nil
}

package get_month_stats

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
)

const (
	msgMissingYear  = "год обязателен"
	msgInvalidYear  = "некорректный год"
	msgMissingMonth = "месяц обязателен"
	msgInvalidMonth = "некорректный месяц, ожидается 1-12"
	msgInvalidID    = "некорректный ID консультанта"
)

// MonthStatsResponse HTTP response model
type MonthStatsResponse struct {
	Status string         `json:"status"`
	Stats  map[string]int `json:"stats"`
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

// Handle GET /api/v1/appointments/month-stats
// Query params: year (required), month (required, 1-12), counselor_id
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	yearStr := query.Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /appointments/month-stats - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		h.logger.Warn("GET /appointments/month-stats - Invalid year: %q", yearStr)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthStr := query.Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /appointments/month-stats - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}
	monthNum, err := strconv.Atoi(monthStr)
	if err != nil || monthNum < 1 || monthNum > 12 {
		h.logger.Warn("GET /appointments/month-stats - Invalid month: %q", monthStr)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	var counselorID *int64
	if idStr := query.Get("counselor_id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /appointments/month-stats - Invalid counselor ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)
			return
		}
		counselorID = &id
	}

	stats, err := h.service.GetMonthStats(r.Context(), year, time.Month(monthNum), counselorID)
	if err != nil {
		h.logger.Error("GET /appointments/month-stats - Failed: year=%d, month=%d, error=%v", year, monthNum, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/month-stats - year=%d, month=%d, days=%d", year, monthNum, len(stats))
	handlers.RespondJSON(w, http.StatusOK, &MonthStatsResponse{
		Status: handlers.StatusSuccess,
		Stats:  stats,
	})
}

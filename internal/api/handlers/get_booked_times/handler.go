package get_booked_times

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidID   = "некорректный ID консультанта"
	msgInvalidType = "некорректный тип консультации, ожидается individual или group"
)

// BookedTimesResponse HTTP response model
type BookedTimesResponse struct {
	Status string   `json:"status"`
	Booked []string `json:"booked"`
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

// Handle GET /api/v1/appointments/booked-times
// Query params: date (required), counselor_id, consultation_type
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments/booked-times - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /appointments/booked-times - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var counselorID *int64
	if idStr := query.Get("counselor_id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /appointments/booked-times - Invalid counselor ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)
			return
		}
		counselorID = &id
	}

	var consultationType *domain.ConsultationType
	if typeStr := query.Get("consultation_type"); typeStr != "" {
		ct := domain.ConsultationType(typeStr)
		if !ct.Valid() {
			h.logger.Warn("GET /appointments/booked-times - Invalid consultation type: %q", typeStr)
			handlers.RespondBadRequest(w, msgInvalidType)
			return
		}
		consultationType = &ct
	}

	booked, err := h.service.GetBookedTimes(r.Context(), date, counselorID, consultationType)
	if err != nil {
		h.logger.Error("GET /appointments/booked-times - Failed: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/booked-times - %d booked slots: date=%s", len(booked), dateStr)
	handlers.RespondJSON(w, http.StatusOK, &BookedTimesResponse{
		Status: handlers.StatusSuccess,
		Booked: booked,
	})
}

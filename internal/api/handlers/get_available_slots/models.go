package get_available_slots

import (
	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
	"github.com/m04kA/SMC-CounselingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CounselingService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Status string `json:"status"`
	Date   string `json:"date"`
	Slots  []Slot `json:"slots"`
}

// Slot получасовой слот в ответе
type Slot struct {
	Time           string `json:"time"`
	Label          string `json:"label"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:           slot.Start.String(),
			Label:          slot.Label,
			AvailableSpots: slot.RemainingCapacity,
			TotalSpots:     slot.TotalCapacity,
		}
	}

	return &SlotsResponse{
		Status: handlers.StatusSuccess,
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  slots,
	}
}

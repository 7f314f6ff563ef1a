package get_availability

import (
	"github.com/m04kA/SMC-CounselingService/internal/domain"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Success      bool                   `json:"success"`
	Availability map[string][]TimeEntry `json:"availability"`
}

// TimeEntry один сохраненный диапазон дня
type TimeEntry struct {
	TimeScheduled string `json:"time_scheduled"`
}

// FromAvailabilitySet конвертирует доменную модель в HTTP response.
// Каждый рабочий день присутствует в ответе, даже пустой
func FromAvailabilitySet(set domain.AvailabilitySet) *AvailabilityResponse {
	availability := make(map[string][]TimeEntry, len(domain.Weekdays()))
	for _, weekday := range domain.Weekdays() {
		entries := make([]TimeEntry, 0, len(set[weekday]))
		for _, r := range set[weekday] {
			entries = append(entries, TimeEntry{TimeScheduled: r.Label()})
		}
		availability[string(weekday)] = entries
	}

	return &AvailabilityResponse{
		Success:      true,
		Availability: availability,
	}
}

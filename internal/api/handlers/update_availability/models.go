package update_availability

import (
	updateAvailability "github.com/m04kA/SMC-CounselingService/internal/usecase/update_availability"
)

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	Days       []string            `json:"days"`
	TimesByDay map[string][]string `json:"timesByDay"`
}

// UpdateAvailabilityResponse HTTP response model
type UpdateAvailabilityResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAvailabilityRequest) ToUseCaseRequest(counselorID int64) *updateAvailability.Request {
	return &updateAvailability.Request{
		CounselorID: counselorID,
		Days:        r.Days,
		TimesByDay:  r.TimesByDay,
	}
}

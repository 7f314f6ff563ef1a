package get_counselors_by_availability

import (
	"github.com/m04kA/SMC-CounselingService/internal/api/handlers"
	getCounselors "github.com/m04kA/SMC-CounselingService/internal/usecase/get_counselors_by_availability"
)

// CounselorsResponse HTTP response model
type CounselorsResponse struct {
	Status     string      `json:"status"`
	Counselors []Counselor `json:"counselors"`
}

// Counselor консультант в ответе
type Counselor struct {
	CounselorID int64  `json:"counselor_id"`
	Name        string `json:"name"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCounselors.Response) *CounselorsResponse {
	counselors := make([]Counselor, len(resp.Counselors))
	for i, c := range resp.Counselors {
		counselors[i] = Counselor{CounselorID: c.ID, Name: c.Name}
	}

	return &CounselorsResponse{
		Status:     handlers.StatusSuccess,
		Counselors: counselors,
	}
}

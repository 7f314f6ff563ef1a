package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-CounselingService/internal/domain"
	createAppointment "github.com/m04kA/SMC-CounselingService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-CounselingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CounselorID      int64   `json:"counselor_id"`
	Date             string  `json:"date"` // "2026-09-07"
	Time             string  `json:"time"` // "9:00 AM"
	ConsultationType string  `json:"consultation_type"`
	Notes            *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	Status      string      `json:"status"`
	Appointment Appointment `json:"appointment"`
}

// Appointment созданная запись в ответе
type Appointment struct {
	ID               int64   `json:"id"`
	StudentID        int64   `json:"student_id"`
	CounselorID      int64   `json:"counselor_id"`
	Date             string  `json:"date"`
	TimeSlot         string  `json:"time_slot"`
	ConsultationType string  `json:"consultation_type"`
	AppointmentState string  `json:"appointment_status"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(studentID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.ParseTime12(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		StudentID:        studentID,
		CounselorID:      r.CounselorID,
		Date:             date,
		Start:            start,
		ConsultationType: domain.ConsultationType(r.ConsultationType),
		Notes:            r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(status string, resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		Status: status,
		Appointment: Appointment{
			ID:               resp.ID,
			StudentID:        resp.StudentID,
			CounselorID:      resp.CounselorID,
			Date:             resp.Date.Format(domain.DateFormat),
			TimeSlot:         resp.TimeSlot,
			ConsultationType: resp.ConsultationType,
			AppointmentState: resp.Status,
			Notes:            resp.Notes,
			CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
			UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
		},
	}
}

package create_meeting_request

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса на создание заявки
type Request struct {
	Name              string
	Email             string
	Phone             string
	Company           *string
	Message           *string
	SelectedTimeSlots []time.Time // Начала подходящих заявителю слотов
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID                int64
	Name              string
	Email             string
	Company           *string
	Phone             string
	Message           *string
	SelectedTimeSlots []time.Time
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func toResponse(req *domain.MeetingRequest) *Response {
	slots := make([]time.Time, 0, len(req.SelectedTimeSlots))
	for _, slot := range req.SelectedTimeSlots {
		slots = append(slots, slot.Start)
	}

	return &Response{
		ID:                req.ID,
		Name:              req.Name,
		Email:             req.Email,
		Company:           req.Company,
		Phone:             req.Phone,
		Message:           req.Message,
		SelectedTimeSlots: slots,
		Status:            string(req.Status),
		CreatedAt:         req.CreatedAt,
		UpdatedAt:         req.UpdatedAt,
	}
}

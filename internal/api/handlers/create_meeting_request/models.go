package create_meeting_request

import (
	"time"

	createMeetingRequest "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_meeting_request"
)

// CreateMeetingRequestBody тело запроса
type CreateMeetingRequestBody struct {
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	Company           *string     `json:"company,omitempty"`
	Message           *string     `json:"message,omitempty"`
	SelectedTimeSlots []time.Time `json:"selectedTimeSlots"`
}

// MeetingRequestResponse HTTP response model
type MeetingRequestResponse struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Company           *string     `json:"company,omitempty"`
	Phone             string      `json:"phone"`
	Message           *string     `json:"message,omitempty"`
	SelectedTimeSlots []time.Time `json:"selectedTimeSlots"`
	Status            string      `json:"status"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует тело запроса в запрос use case
func (b *CreateMeetingRequestBody) ToUseCaseRequest() *createMeetingRequest.Request {
	return &createMeetingRequest.Request{
		Name:              b.Name,
		Email:             b.Email,
		Phone:             b.Phone,
		Company:           b.Company,
		Message:           b.Message,
		SelectedTimeSlots: b.SelectedTimeSlots,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createMeetingRequest.Response) *MeetingRequestResponse {
	return &MeetingRequestResponse{
		ID:                resp.ID,
		Name:              resp.Name,
		Email:             resp.Email,
		Company:           resp.Company,
		Phone:             resp.Phone,
		Message:           resp.Message,
		SelectedTimeSlots: resp.SelectedTimeSlots,
		Status:            resp.Status,
		CreatedAt:         resp.CreatedAt,
		UpdatedAt:         resp.UpdatedAt,
	}
}

package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ListMeetingRequestsRequest фильтр списка заявок
type ListMeetingRequestsRequest struct {
	Status *string `json:"status,omitempty"`
}

// MeetingRequestResponse заявка на встречу
type MeetingRequestResponse struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Company           *string     `json:"company,omitempty"`
	Phone             string      `json:"phone"`
	Message           *string     `json:"message,omitempty"`
	SelectedTimeSlots []time.Time `json:"selectedTimeSlots"`
	Status            string      `json:"status"`
	ConfirmedSlot     *time.Time  `json:"confirmedSlot,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в ответ
func FromDomain(req *domain.MeetingRequest) *MeetingRequestResponse {
	slots := make([]time.Time, 0, len(req.SelectedTimeSlots))
	for _, slot := range req.SelectedTimeSlots {
		slots = append(slots, slot.Start)
	}

	var confirmed *time.Time
	if req.ConfirmedSlot != nil {
		start := req.ConfirmedSlot.Start
		confirmed = &start
	}

	return &MeetingRequestResponse{
		ID:                req.ID,
		Name:              req.Name,
		Email:             req.Email,
		Company:           req.Company,
		Phone:             req.Phone,
		Message:           req.Message,
		SelectedTimeSlots: slots,
		Status:            string(req.Status),
		ConfirmedSlot:     confirmed,
		CreatedAt:         req.CreatedAt,
		UpdatedAt:         req.UpdatedAt,
	}
}

// FromDomainList конвертирует список заявок
func FromDomainList(reqs []*domain.MeetingRequest) []*MeetingRequestResponse {
	result := make([]*MeetingRequestResponse, 0, len(reqs))
	for _, req := range reqs {
		result = append(result, FromDomain(req))
	}
	return result
}

package confirm_meeting_request

import (
	"time"

	confirmMeetingRequest "github.com/m04kA/SMC-SchedulingService/internal/usecase/confirm_meeting_request"
)

// ConfirmBody тело запроса: слот из предложенных заявителем
type ConfirmBody struct {
	Slot time.Time `json:"slot"`
}

// ConfirmResponse HTTP response model
type ConfirmResponse struct {
	RequestID       int64     `json:"requestId"`
	Status          string    `json:"status"`
	ConfirmedSlot   time.Time `json:"confirmedSlot"`
	MeetingID       int64     `json:"meetingId"`
	JoinReference   string    `json:"joinReference"`
	DurationMinutes int       `json:"durationMinutes"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует тело запроса в запрос use case
func (b *ConfirmBody) ToUseCaseRequest(requestID, adminUserID int64) *confirmMeetingRequest.Request {
	return &confirmMeetingRequest.Request{
		RequestID:   requestID,
		Slot:        b.Slot,
		AdminUserID: adminUserID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmMeetingRequest.Response) *ConfirmResponse {
	return &ConfirmResponse{
		RequestID:       resp.RequestID,
		Status:          resp.Status,
		ConfirmedSlot:   resp.ConfirmedSlot,
		MeetingID:       resp.MeetingID,
		JoinReference:   resp.JoinReference,
		DurationMinutes: resp.DurationMinutes,
		UpdatedAt:       resp.UpdatedAt,
	}
}

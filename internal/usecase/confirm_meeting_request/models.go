package confirm_meeting_request

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса на подтверждение заявки
type Request struct {
	RequestID   int64
	Slot        time.Time // Выбранный администратором слот из предложенных заявителем
	AdminUserID int64     // Ведущий встречи
}

// Response модель ответа: обновленная заявка и созданная встреча
type Response struct {
	RequestID       int64
	Status          string
	ConfirmedSlot   time.Time
	MeetingID       int64
	JoinReference   string
	DurationMinutes int
	UpdatedAt       time.Time
}

func toResponse(req *domain.MeetingRequest, meeting *domain.Meeting) *Response {
	return &Response{
		RequestID:       req.ID,
		Status:          string(req.Status),
		ConfirmedSlot:   meeting.ScheduledAt,
		MeetingID:       meeting.ID,
		JoinReference:   meeting.JoinReference,
		DurationMinutes: meeting.DurationMinutes,
		UpdatedAt:       req.UpdatedAt,
	}
}

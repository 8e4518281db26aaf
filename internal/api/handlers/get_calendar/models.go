package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/calendar"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getCalendar "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
// Кроме проекции содержит снимок, из которого она построена
type CalendarResponse struct {
	From            string           `json:"from"`
	To              string           `json:"to"`
	Slots           []SlotView       `json:"slots"`
	Summary         map[string]int   `json:"summary"`
	BlockedSlots    []BlockedSlot    `json:"blockedSlots"`
	Meetings        []Meeting        `json:"meetings"`
	PendingRequests []PendingRequest `json:"pendingRequests"`
}

// SlotView статус одного слота
type SlotView struct {
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	MeetingID     *int64    `json:"meetingId,omitempty"`
	BlockedSlotID *int64    `json:"blockedSlotId,omitempty"`
	PendingCount  int       `json:"pendingCount"`
}

type BlockedSlot struct {
	ID              int64     `json:"id"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Reason          string    `json:"reason,omitempty"`
	CreatedByUserID int64     `json:"createdByUserId"`
}

type Meeting struct {
	ID               int64     `json:"id"`
	ScheduledAt      time.Time `json:"scheduledAt"`
	DurationMinutes  int       `json:"durationMinutes"`
	Status           string    `json:"status"`
	HostUserID       int64     `json:"hostUserId"`
	MeetingRequestID *int64    `json:"meetingRequestId,omitempty"`
}

type PendingRequest struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	SelectedTimeSlots []time.Time `json:"selectedTimeSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		From:            resp.From.Format(domain.DateFormat),
		To:              resp.To.Format(domain.DateFormat),
		Slots:           make([]SlotView, 0, len(resp.Slots)),
		Summary:         make(map[string]int, len(resp.Summary)),
		BlockedSlots:    make([]BlockedSlot, 0, len(resp.Snapshot.BlockedSlots)),
		Meetings:        make([]Meeting, 0, len(resp.Snapshot.Meetings)),
		PendingRequests: make([]PendingRequest, 0, len(resp.Snapshot.Requests)),
	}

	for _, view := range resp.Slots {
		out.Slots = append(out.Slots, fromSlotView(view))
	}
	for status, count := range resp.Summary {
		out.Summary[string(status)] = count
	}
	for _, b := range resp.Snapshot.BlockedSlots {
		out.BlockedSlots = append(out.BlockedSlots, BlockedSlot{
			ID:              b.ID,
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			Reason:          b.Reason,
			CreatedByUserID: b.CreatedByUserID,
		})
	}
	for _, m := range resp.Snapshot.Meetings {
		out.Meetings = append(out.Meetings, Meeting{
			ID:               m.ID,
			ScheduledAt:      m.ScheduledAt,
			DurationMinutes:  m.DurationMinutes,
			Status:           string(m.Status),
			HostUserID:       m.HostUserID,
			MeetingRequestID: m.MeetingRequestID,
		})
	}
	for _, r := range resp.Snapshot.Requests {
		slots := make([]time.Time, 0, len(r.SelectedTimeSlots))
		for _, s := range r.SelectedTimeSlots {
			slots = append(slots, s.Start)
		}
		out.PendingRequests = append(out.PendingRequests, PendingRequest{
			ID:                r.ID,
			Name:              r.Name,
			SelectedTimeSlots: slots,
		})
	}

	return out
}

func fromSlotView(view calendar.SlotView) SlotView {
	return SlotView{
		StartTime:     view.Slot.Start,
		EndTime:       view.Slot.End(),
		Status:        string(view.Status),
		MeetingID:     view.MeetingID,
		BlockedSlotID: view.BlockedSlotID,
		PendingCount:  view.PendingCount,
	}
}

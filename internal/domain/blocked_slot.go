package domain

import "time"

// BlockedTimeSlot интервал, вручную закрытый администратором
// Не изменяется после создания - только удаляется по ID
type BlockedTimeSlot struct {
	ID              int64
	StartTime       time.Time
	EndTime         time.Time
	Reason          string
	CreatedByUserID int64
	CreatedAt       time.Time
}

// Interval интервал блокировки
func (b *BlockedTimeSlot) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// Covers true, если блокировка пересекается со слотом
func (b *BlockedTimeSlot) Covers(slot TimeSlot) bool {
	return slot.Overlaps(b.StartTime, b.EndTime)
}

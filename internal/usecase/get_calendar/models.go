package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/calendar"
)

// Request модель запроса календаря администратора
type Request struct {
	From time.Time // Первый день (включительно)
	To   time.Time // Последний день (не включительно)
}

// Response проекция слотов и авторитетный снимок, из которого она построена
// Снимок нужен клиенту, чтобы пересчитать проекцию с локальным оверлеем
type Response struct {
	From     time.Time
	To       time.Time
	Slots    []calendar.SlotView
	Summary  map[calendar.SlotStatus]int
	Snapshot calendar.Snapshot
}

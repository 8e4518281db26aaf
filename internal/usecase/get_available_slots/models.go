package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса слотов
// From и To - календарные даты (используются только год, месяц и день), To не включается
type Request struct {
	From time.Time
	To   time.Time
}

// Response модель ответа со списком свободных слотов
type Response struct {
	From  time.Time // полночь первого дня в часовом поясе расписания
	To    time.Time // полночь дня, следующего за последним
	Slots []domain.TimeSlot
	// Degraded true, если конфликты не проверялись из-за недоступности хранилища
	Degraded bool
}

package create_meeting_request

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateContact нормализует и проверяет контактные данные
func validateContact(req *Request) (domain.Contact, error) {
	contact := domain.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
	}.Normalize()

	if err := contact.Validate(); err != nil {
		return domain.Contact{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return contact, nil
}

// validateSlots проверяет выбранные слоты и возвращает их без дублей по возрастанию
// Каждый слот должен быть одним из слотов, которые правила выдают на его день в поясе расписания
func validateSlots(starts []time.Time, rules domain.AvailabilityRuleSet, loc *time.Location, now time.Time) ([]domain.TimeSlot, error) {
	if len(starts) == 0 {
		return nil, fmt.Errorf("%w: at least one time slot must be selected", ErrInvalidInput)
	}

	seen := make(map[domain.SlotKey]struct{}, len(starts))
	slots := make([]domain.TimeSlot, 0, len(starts))
	for _, start := range starts {
		slot := domain.NewTimeSlot(start)

		if start.IsZero() {
			return nil, fmt.Errorf("%w: empty time slot", ErrInvalidInput)
		}
		if !slot.IsAlignedIn(loc) {
			return nil, fmt.Errorf("%w: slot %s must start at :00 or :30", ErrInvalidInput, start.Format(time.RFC3339))
		}
		if !slot.Start.After(now) {
			return nil, fmt.Errorf("%w: slot %s is in the past", ErrInvalidInput, start.Format(time.RFC3339))
		}
		if !rules.Offers(slot.Start, loc) {
			return nil, fmt.Errorf("%w: slot %s is outside business hours", ErrInvalidInput, start.Format(time.RFC3339))
		}

		if _, dup := seen[slot.Key()]; dup {
			continue
		}
		seen[slot.Key()] = struct{}{}
		slots = append(slots, slot)
	}

	if len(slots) > domain.MaxSelectedTimeSlots {
		return nil, fmt.Errorf("%w: at most %d time slots can be selected", ErrInvalidInput, domain.MaxSelectedTimeSlots)
	}

	return domain.SortSlots(slots), nil
}

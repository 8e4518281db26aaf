package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Источники набора правил
const (
	SourceStored  = "stored"  // сохранены администратором
	SourceDefault = "default" // файл политики или встроенное расписание
)

// DayRule окно приема на один день недели
type DayRule struct {
	Weekday string           `json:"weekday"`
	Closed  bool             `json:"closed"`
	Open    *types.TimeString `json:"open,omitempty"`
	Close   *types.TimeString `json:"close,omitempty"`
}

// UpdateRulesRequest полная замена расписания; не перечисленные дни считаются выходными
type UpdateRulesRequest struct {
	Days []DayRule `json:"days"`
}

// RulesResponse текущее расписание по всем семи дням недели
type RulesResponse struct {
	Timezone string    `json:"timezone"`
	Source   string    `json:"source"`
	Days     []DayRule `json:"days"`
}

// ToDomain конвертирует запрос в доменный набор правил
func (r *UpdateRulesRequest) ToDomain() (domain.AvailabilityRuleSet, error) {
	rules := make([]domain.AvailabilityRule, 0, len(r.Days))
	for _, day := range r.Days {
		weekday, ok := domain.ParseWeekday(day.Weekday)
		if !ok {
			return domain.AvailabilityRuleSet{}, fmt.Errorf("unknown weekday %q", day.Weekday)
		}

		rule := domain.AvailabilityRule{Weekday: weekday, Closed: day.Closed}
		if !day.Closed {
			if day.Open == nil || day.Close == nil {
				return domain.AvailabilityRuleSet{}, fmt.Errorf("%s: open and close are required", day.Weekday)
			}
			rule.OpenMinute = day.Open.Minutes()
			rule.CloseMinute = day.Close.Minutes()
		}
		rules = append(rules, rule)
	}
	return domain.AvailabilityRuleSet{Rules: rules}, nil
}

// FromDomain раскладывает набор правил на семь дней, начиная с понедельника
func FromDomain(set domain.AvailabilityRuleSet, location *time.Location, source string) *RulesResponse {
	days := make([]DayRule, 0, 7)
	for i := 1; i <= 7; i++ {
		weekday := time.Weekday(i % 7)
		rule := set.RuleFor(weekday)

		day := DayRule{Weekday: domain.WeekdayName(weekday), Closed: !rule.IsOpen()}
		if rule.IsOpen() {
			open, _ := types.NewTimeStringFromMinutes(rule.OpenMinute)
			closing, _ := types.NewTimeStringFromMinutes(rule.CloseMinute)
			day.Open, day.Close = &open, &closing
		}
		days = append(days, day)
	}

	return &RulesResponse{
		Timezone: location.String(),
		Source:   source,
		Days:     days,
	}
}

package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidAvailabilityRule возвращается при некорректном правиле рабочих часов
var ErrInvalidAvailabilityRule = errors.New("domain: invalid availability rule")

const minutesInDay = 24 * 60

// AvailabilityRule окно приема на один день недели
// OpenMinute/CloseMinute - минуты от полуночи, окно полуоткрытое [open, close)
type AvailabilityRule struct {
	Weekday     time.Weekday
	Closed      bool
	OpenMinute  int
	CloseMinute int
}

// Validate проверяет инварианты правила
func (r AvailabilityRule) Validate() error {
	if r.Weekday < time.Sunday || r.Weekday > time.Saturday {
		return fmt.Errorf("%w: weekday %d out of range", ErrInvalidAvailabilityRule, r.Weekday)
	}
	if r.Closed {
		return nil
	}
	if r.OpenMinute < 0 || r.CloseMinute > minutesInDay {
		return fmt.Errorf("%w: %s window %d-%d out of day bounds",
			ErrInvalidAvailabilityRule, r.Weekday, r.OpenMinute, r.CloseMinute)
	}
	if r.OpenMinute >= r.CloseMinute {
		return fmt.Errorf("%w: %s opens at %d but closes at %d",
			ErrInvalidAvailabilityRule, r.Weekday, r.OpenMinute, r.CloseMinute)
	}
	// Окно должно быть выровнено по сетке слотов, иначе слоты начнутся не в :00/:30
	if r.OpenMinute%SlotDurationMinutes != 0 || r.CloseMinute%SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: %s window must be aligned to %d minutes",
			ErrInvalidAvailabilityRule, r.Weekday, SlotDurationMinutes)
	}
	return nil
}

// IsOpen true, если в этот день есть окно приема
func (r AvailabilityRule) IsOpen() bool {
	return !r.Closed && r.OpenMinute < r.CloseMinute
}

// AvailabilityRuleSet декларативное расписание рабочих часов по дням недели
// Дни, для которых правило не задано, считаются выходными
type AvailabilityRuleSet struct {
	Rules []AvailabilityRule
}

// RuleFor возвращает правило на день недели
func (s AvailabilityRuleSet) RuleFor(day time.Weekday) AvailabilityRule {
	for _, rule := range s.Rules {
		if rule.Weekday == day {
			return rule
		}
	}
	return AvailabilityRule{Weekday: day, Closed: true}
}

// Validate проверяет все правила и отсутствие дублей по дням недели
func (s AvailabilityRuleSet) Validate() error {
	seen := make(map[time.Weekday]bool, len(s.Rules))
	for _, rule := range s.Rules {
		if err := rule.Validate(); err != nil {
			return err
		}
		if seen[rule.Weekday] {
			return fmt.Errorf("%w: duplicate rule for %s", ErrInvalidAvailabilityRule, rule.Weekday)
		}
		seen[rule.Weekday] = true
	}
	return nil
}

// Normalized возвращает по одному правилу на каждый день недели, начиная с воскресенья
func (s AvailabilityRuleSet) Normalized() AvailabilityRuleSet {
	rules := make([]AvailabilityRule, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		rules = append(rules, s.RuleFor(day))
	}
	return AvailabilityRuleSet{Rules: rules}
}

// DefaultAvailabilityRuleSet политика по умолчанию:
// вс-чт 08:00-21:00, пт 08:00-13:00, сб выходной
func DefaultAvailabilityRuleSet() AvailabilityRuleSet {
	const (
		opensAt    = 8 * 60
		closesAt   = 21 * 60
		fridayEnds = 13 * 60
	)
	return AvailabilityRuleSet{Rules: []AvailabilityRule{
		{Weekday: time.Sunday, OpenMinute: opensAt, CloseMinute: closesAt},
		{Weekday: time.Monday, OpenMinute: opensAt, CloseMinute: closesAt},
		{Weekday: time.Tuesday, OpenMinute: opensAt, CloseMinute: closesAt},
		{Weekday: time.Wednesday, OpenMinute: opensAt, CloseMinute: closesAt},
		{Weekday: time.Thursday, OpenMinute: opensAt, CloseMinute: closesAt},
		{Weekday: time.Friday, OpenMinute: opensAt, CloseMinute: fridayEnds},
		{Weekday: time.Saturday, Closed: true},
	}}
}

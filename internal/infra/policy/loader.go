package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// File формат YAML файла политики рабочих часов
//
//	days:
//	  monday:   {open: "08:00", close: "21:00"}
//	  friday:   {open: "08:00", close: "13:00"}
//	  saturday: {closed: true}
//
// Дни, не перечисленные в файле, считаются выходными
type File struct {
	Days map[string]Day `yaml:"days"`
}

// Day окно приема на один день
type Day struct {
	Open   types.TimeString `yaml:"open"`
	Close  types.TimeString `yaml:"close"`
	Closed bool             `yaml:"closed"`
}

// LoadFile читает и валидирует политику рабочих часов
func LoadFile(path string) (domain.AvailabilityRuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.AvailabilityRuleSet{}, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}
	return Parse(data)
}

// Parse разбирает YAML политику в набор правил
func Parse(data []byte) (domain.AvailabilityRuleSet, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.AvailabilityRuleSet{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(file.Days) == 0 {
		return domain.AvailabilityRuleSet{}, fmt.Errorf("%w: no days defined", ErrInvalidPolicy)
	}

	rules := make([]domain.AvailabilityRule, 0, len(file.Days))
	for name, day := range file.Days {
		weekday, ok := domain.ParseWeekday(name)
		if !ok {
			return domain.AvailabilityRuleSet{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidPolicy, name)
		}

		rule := domain.AvailabilityRule{Weekday: weekday, Closed: day.Closed}
		if !day.Closed {
			if day.Open.IsZero() && day.Close.IsZero() {
				return domain.AvailabilityRuleSet{}, fmt.Errorf("%w: %s has neither hours nor closed flag", ErrInvalidPolicy, name)
			}
			rule.OpenMinute = day.Open.Minutes()
			rule.CloseMinute = day.Close.Minutes()
		}
		rules = append(rules, rule)
	}

	set := domain.AvailabilityRuleSet{Rules: rules}
	if err := set.Validate(); err != nil {
		return domain.AvailabilityRuleSet{}, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	return set.Normalized(), nil
}

package availability_rules

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// RuleRepository хранилище правил рабочих часов
type RuleRepository interface {
	Get(ctx context.Context) (domain.AvailabilityRuleSet, error)
	Replace(ctx context.Context, set domain.AvailabilityRuleSet) error
}

// TxManager менеджер транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package availability_rule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

const table = "availability_rules"

// Repository репозиторий правил рабочих часов (одна строка на день недели)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает сохраненный набор правил
// Если таблица пуста, возвращает ErrRulesNotFound
func (r *Repository) Get(ctx context.Context) (domain.AvailabilityRuleSet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "closed", "open_minute", "close_minute").
		From(table).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return domain.AvailabilityRuleSet{}, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.AvailabilityRuleSet{}, fmt.Errorf("%w: Get - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.AvailabilityRule, 0, 7)
	for rows.Next() {
		var rule domain.AvailabilityRule
		var weekday int
		if err := rows.Scan(&weekday, &rule.Closed, &rule.OpenMinute, &rule.CloseMinute); err != nil {
			return domain.AvailabilityRuleSet{}, fmt.Errorf("%w: Get - scan rule: %v", ErrScanRow, err)
		}
		rule.Weekday = time.Weekday(weekday)
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return domain.AvailabilityRuleSet{}, fmt.Errorf("%w: Get - rows error: %v", ErrScanRow, err)
	}

	if len(rules) == 0 {
		return domain.AvailabilityRuleSet{}, ErrRulesNotFound
	}

	return domain.AvailabilityRuleSet{Rules: rules}, nil
}

// Replace заменяет все правила
// Должен вызываться внутри транзакции, иначе читатели могут увидеть пустую таблицу
func (r *Repository) Replace(ctx context.Context, set domain.AvailabilityRuleSet) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %v", ErrExecQuery, err)
	}

	if len(set.Rules) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert(table).
		Columns("weekday", "closed", "open_minute", "close_minute")
	for _, rule := range set.Rules {
		insert = insert.Values(int(rule.Weekday), rule.Closed, rule.OpenMinute, rule.CloseMinute)
	}

	insertQuery, insertArgs, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

package availability_rules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability_rule"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability_rules/models"
)

// Service сервис правил рабочих часов
// Приоритет источников: сохраненные администратором правила -> fallback (файл политики или встроенное расписание)
type Service struct {
	ruleRepo  RuleRepository
	txManager TxManager
	fallback  domain.AvailabilityRuleSet
	location  *time.Location
	logger    Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(
	ruleRepo RuleRepository,
	txManager TxManager,
	fallback domain.AvailabilityRuleSet,
	location *time.Location,
	logger Logger,
) *Service {
	if len(fallback.Rules) == 0 {
		fallback = domain.DefaultAvailabilityRuleSet()
	}
	if location == nil {
		location = time.UTC
	}
	return &Service{
		ruleRepo:  ruleRepo,
		txManager: txManager,
		fallback:  fallback,
		location:  location,
		logger:    logger,
	}
}

// GetRuleSet возвращает действующий набор правил
// Ошибка хранилища не прерывает запрос слотов: используется fallback
func (s *Service) GetRuleSet(ctx context.Context) (domain.AvailabilityRuleSet, error) {
	set, _ := s.current(ctx)
	return set, nil
}

// Get возвращает действующее расписание для отображения
func (s *Service) Get(ctx context.Context) (*models.RulesResponse, error) {
	set, source := s.current(ctx)
	return models.FromDomain(set, s.location, source), nil
}

// Replace полностью заменяет сохраненное расписание
func (s *Service) Replace(ctx context.Context, req *models.UpdateRulesRequest) (*models.RulesResponse, error) {
	s.logger.Info("Replace: replacing availability rules, days=%d", len(req.Days))

	// 1. Конвертация и валидация
	set, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Replace: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := set.Validate(); err != nil {
		s.logger.Warn("Replace: invalid rule set: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	set = set.Normalized()

	// 2. Удаление и вставка в одной транзакции
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.ruleRepo.Replace(ctx, set)
	})
	if err != nil {
		s.logger.Error("Replace: repository error: %v", err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: availability rules replaced, open days=%d", openDays(set))
	return models.FromDomain(set, s.location, models.SourceStored), nil
}

func (s *Service) current(ctx context.Context) (domain.AvailabilityRuleSet, string) {
	set, err := s.ruleRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, ruleRepo.ErrRulesNotFound) {
			s.logger.Warn("GetRuleSet: failed to load stored rules, using fallback: %v", err)
		}
		return s.fallback, models.SourceDefault
	}
	return set, models.SourceStored
}

func openDays(set domain.AvailabilityRuleSet) int {
	n := 0
	for _, rule := range set.Rules {
		if rule.IsOpen() {
			n++
		}
	}
	return n
}

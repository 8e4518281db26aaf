package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// UseCase use case получения свободных слотов для записи
type UseCase struct {
	blockedRepo  BlockedSlotRepository
	meetingRepo  MeetingRepository
	rules        RuleSetProvider
	metrics      MetricsRecorder
	location     *time.Location
	maxRangeDays int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockedRepo BlockedSlotRepository,
	meetingRepo MeetingRepository,
	rules RuleSetProvider,
	metrics MetricsRecorder,
	location *time.Location,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	if maxRangeDays <= 0 {
		maxRangeDays = domain.DefaultMaxRangeDays
	}
	return &UseCase{
		blockedRepo:  blockedRepo,
		meetingRepo:  meetingRepo,
		rules:        rules,
		metrics:      metrics,
		location:     location,
		maxRangeDays: maxRangeDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация и привязка дат к часовому поясу расписания
	from, to, err := uc.normalizeRange(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: from=%s, to=%s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	// 2. Правила рабочих часов
	rules, err := uc.rules.GetRuleSet(ctx)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to load rules, using default: %v", err)
		rules = domain.DefaultAvailabilityRuleSet()
	}

	// 3. Кандидаты без прошедших слотов
	candidates := dropPast(rules.Slots(from, to), uc.timeProvider.Now())

	resp := &Response{From: from, To: to, Slots: candidates}
	if len(candidates) == 0 {
		uc.metrics.ObserveSlotQuery(false)
		return resp, nil
	}

	// 4. Конфликты в окне кандидатов
	windowStart := candidates[0].Start
	windowEnd := candidates[len(candidates)-1].End()

	conflicts, err := uc.loadConflicts(ctx, windowStart, windowEnd)
	if err != nil {
		// Хранилище недоступно: отдаем слоты без фильтрации, но явно помечаем ответ
		uc.logger.Error("GetAvailableSlots: returning %d unfiltered slots: %v", len(candidates), err)
		uc.metrics.ObserveSlotQuery(true)
		resp.Degraded = true
		return resp, nil
	}

	// 5. Фильтрация
	resp.Slots = filterConflicts(candidates, conflicts)
	uc.metrics.ObserveSlotQuery(false)

	uc.logger.Info("GetAvailableSlots: %d of %d candidates are free (conflicts=%d)",
		len(resp.Slots), len(candidates), len(conflicts))

	return resp, nil
}

func (uc *UseCase) loadConflicts(ctx context.Context, from, to time.Time) ([]domain.Interval, error) {
	blocked, err := uc.blockedRepo.ListOverlapping(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: blocked slots: %v", ErrConflictSourceUnavailable, err)
	}

	meetings, err := uc.meetingRepo.ListActiveOverlapping(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: meetings: %v", ErrConflictSourceUnavailable, err)
	}

	return conflictIntervals(blocked, meetings), nil
}

// normalizeRange переносит календарные даты в часовой пояс расписания и проверяет диапазон
func (uc *UseCase) normalizeRange(req *Request) (time.Time, time.Time, error) {
	if req.From.IsZero() || req.To.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	from := time.Date(req.From.Year(), req.From.Month(), req.From.Day(), 0, 0, 0, 0, uc.location)
	to := time.Date(req.To.Year(), req.To.Month(), req.To.Day(), 0, 0, 0, 0, uc.location)

	if !from.Before(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}
	if to.After(from.AddDate(0, 0, uc.maxRangeDays)) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: at most %d days", ErrRangeTooLarge, uc.maxRangeDays)
	}

	return from, to, nil
}

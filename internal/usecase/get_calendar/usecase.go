package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/calendar"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// UseCase use case календаря администратора: статус каждого слота в диапазоне
type UseCase struct {
	blockedRepo  BlockedSlotRepository
	meetingRepo  MeetingRepository
	requestRepo  MeetingRequestRepository
	rules        RuleSetProvider
	location     *time.Location
	maxRangeDays int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockedRepo BlockedSlotRepository,
	meetingRepo MeetingRepository,
	requestRepo MeetingRequestRepository,
	rules RuleSetProvider,
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
		requestRepo:  requestRepo,
		rules:        rules,
		location:     location,
		maxRangeDays: maxRangeDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
// В отличие от публичного списка слотов, ошибки источников не маскируются: администратору нужна точная картина
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация диапазона
	from, to, err := uc.normalizeRange(req)
	if err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetCalendar: from=%s, to=%s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	// 2. Слоты по правилам рабочих часов
	rules, err := uc.rules.GetRuleSet(ctx)
	if err != nil {
		uc.logger.Warn("GetCalendar: failed to load rules, using default: %v", err)
		rules = domain.DefaultAvailabilityRuleSet()
	}
	slots := rules.Slots(from, to)

	// 3. Авторитетный снимок
	snapshot, err := uc.loadSnapshot(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetCalendar: %v", err)
		return nil, err
	}

	// 4. Проекция без оверлея
	views := calendar.Project(slots, snapshot, nil, uc.timeProvider.Now())

	return &Response{
		From:     from,
		To:       to,
		Slots:    views,
		Summary:  calendar.Summary(views),
		Snapshot: snapshot,
	}, nil
}

func (uc *UseCase) loadSnapshot(ctx context.Context, from, to time.Time) (calendar.Snapshot, error) {
	blocked, err := uc.blockedRepo.ListOverlapping(ctx, from, to)
	if err != nil {
		return calendar.Snapshot{}, fmt.Errorf("%w: failed to load blocked slots: %v", ErrInternal, err)
	}

	meetings, err := uc.meetingRepo.ListActiveOverlapping(ctx, from, to)
	if err != nil {
		return calendar.Snapshot{}, fmt.Errorf("%w: failed to load meetings: %v", ErrInternal, err)
	}

	pending := domain.MeetingRequestPending
	requests, err := uc.requestRepo.List(ctx, domain.MeetingRequestFilter{
		Status:   &pending,
		SlotFrom: &from,
		SlotTo:   &to,
	})
	if err != nil {
		return calendar.Snapshot{}, fmt.Errorf("%w: failed to load meeting requests: %v", ErrInternal, err)
	}

	return calendar.Snapshot{BlockedSlots: blocked, Meetings: meetings, Requests: requests}, nil
}

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
		return time.Time{}, time.Time{}, fmt.Errorf("%w: at most %d days", ErrInvalidInput, uc.maxRangeDays)
	}

	return from, to, nil
}

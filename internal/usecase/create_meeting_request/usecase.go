package create_meeting_request

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/notifications"
)

// UseCase use case создания заявки на встречу
type UseCase struct {
	requestRepo  MeetingRequestRepository
	rules        RuleSetProvider
	notifier     Notifier
	metrics      MetricsRecorder
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo MeetingRequestRepository,
	rules RuleSetProvider,
	notifier Notifier,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:  requestRepo,
		rules:        rules,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case создания заявки
// Заявка сохраняется в статусе pending; занятость слотов здесь не проверяется, это решает администратор при подтверждении
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateMeetingRequest: email=%s, slots=%d", req.Email, len(req.SelectedTimeSlots))

	// 1. Валидация контактов
	contact, err := validateContact(req)
	if err != nil {
		uc.logger.Warn("CreateMeetingRequest: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация слотов по сетке и рабочим часам
	rules, err := uc.rules.GetRuleSet(ctx)
	if err != nil {
		uc.logger.Warn("CreateMeetingRequest: failed to load rules, using default: %v", err)
		rules = domain.DefaultAvailabilityRuleSet()
	}

	slots, err := validateSlots(req.SelectedTimeSlots, rules, uc.location, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateMeetingRequest: validation failed: %v", err)
		return nil, err
	}

	// 3. Сохранение
	created, err := uc.requestRepo.Create(ctx, &domain.MeetingRequest{
		Name:              contact.Name,
		Email:             contact.Email,
		Company:           contact.Company,
		Phone:             contact.Phone,
		Message:           contact.Message,
		SelectedTimeSlots: slots,
		Status:            domain.MeetingRequestPending,
	})
	if err != nil {
		uc.logger.Error("CreateMeetingRequest: failed to create meeting request: %v", err)
		return nil, fmt.Errorf("%w: failed to create meeting request: %v", ErrInternal, err)
	}

	uc.metrics.RecordTransition(string(domain.MeetingRequestPending))

	// 4. Уведомление не влияет на результат
	if err := uc.notifier.MeetingRequestCreated(ctx, created); err != nil {
		uc.logger.Warn("CreateMeetingRequest: failed to notify about meeting request id=%d: %v", created.ID, err)
		uc.metrics.RecordNotificationFailure(notifications.EventMeetingRequestCreated)
	}

	uc.logger.Info("CreateMeetingRequest: successfully created meeting request id=%d", created.ID)

	return toResponse(created), nil
}

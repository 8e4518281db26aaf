package confirm_meeting_request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	meetingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/meeting"
	meetingRequestRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/meeting_request"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/notifications"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

// UseCase use case подтверждения заявки на встречу
type UseCase struct {
	requestRepo MeetingRequestRepository
	meetingRepo MeetingRepository
	blockedRepo BlockedSlotRepository
	txManager   TransactionManager
	notifier    Notifier
	metrics     MetricsRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo MeetingRequestRepository,
	meetingRepo MeetingRepository,
	blockedRepo BlockedSlotRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo: requestRepo,
		meetingRepo: meetingRepo,
		blockedRepo: blockedRepo,
		txManager:   txManager,
		notifier:    notifier,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case подтверждения заявки
// Проверка занятости слота, создание встречи и смена статуса заявки выполняются в одной
// сериализуемой транзакции; exclusion constraint на интервалах активных встреч страхует от гонок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmMeetingRequest: request=%d, slot=%s, admin=%d",
		req.RequestID, req.Slot.Format(time.RFC3339), req.AdminUserID)

	// 1. Валидация входных данных
	if req.RequestID <= 0 {
		uc.logger.Warn("ConfirmMeetingRequest: invalid request id=%d", req.RequestID)
		return nil, fmt.Errorf("%w: request id must be positive", ErrInvalidInput)
	}
	if req.Slot.IsZero() {
		uc.logger.Warn("ConfirmMeetingRequest: slot is required")
		return nil, fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	slot := domain.NewTimeSlot(req.Slot)

	var (
		confirmed *domain.MeetingRequest
		meeting   *domain.Meeting
	)

	// 2. Все изменения в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Заявка с блокировкой строки
		request, err := uc.requestRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, meetingRequestRepo.ErrMeetingRequestNotFound) {
				uc.logger.Warn("ConfirmMeetingRequest: meeting request id=%d not found", req.RequestID)
				return ErrMeetingRequestNotFound
			}
			uc.logger.Error("ConfirmMeetingRequest: failed to get meeting request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to get meeting request: %v", ErrInternal, err)
		}

		// 2.2. Переход pending -> confirmed только для предложенного слота
		if err := request.Confirm(slot); err != nil {
			if errors.Is(err, domain.ErrSlotNotSelected) {
				uc.logger.Warn("ConfirmMeetingRequest: slot %s is not selected in request id=%d",
					slot.Start.Format(time.RFC3339), req.RequestID)
				return ErrInvalidSlot
			}
			uc.logger.Warn("ConfirmMeetingRequest: request id=%d: %v", req.RequestID, err)
			return ErrInvalidState
		}

		// 2.3. Слот не должен быть закрыт блокировкой
		blocked, err := uc.blockedRepo.ListOverlapping(txCtx, slot.Start, slot.End())
		if err != nil {
			uc.logger.Error("ConfirmMeetingRequest: failed to check blocked slots: %v", err)
			return fmt.Errorf("%w: failed to check blocked slots: %v", ErrInternal, err)
		}
		if len(blocked) > 0 {
			uc.logger.Warn("ConfirmMeetingRequest: slot %s is blocked by blocked slot id=%d",
				slot.Start.Format(time.RFC3339), blocked[0].ID)
			return ErrSlotBlocked
		}

		// 2.4. Повторная проверка занятости на свежих данных
		taken, err := uc.meetingRepo.HasActiveOverlap(txCtx, slot.Start, slot.End())
		if err != nil {
			uc.logger.Error("ConfirmMeetingRequest: failed to check meetings: %v", err)
			return fmt.Errorf("%w: failed to check meetings: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("ConfirmMeetingRequest: slot %s is already taken", slot.Start.Format(time.RFC3339))
			return ErrSlotTaken
		}

		// 2.5. Встреча
		requestID := request.ID
		created, err := uc.meetingRepo.Create(txCtx, &domain.Meeting{
			HostUserID:       req.AdminUserID,
			AccessType:       domain.MeetingAccessPublic,
			ScheduledAt:      slot.Start,
			DurationMinutes:  domain.SlotDurationMinutes,
			Status:           domain.MeetingStatusScheduled,
			JoinReference:    uuid.NewString(),
			MeetingRequestID: &requestID,
		})
		if err != nil {
			switch {
			case errors.Is(err, meetingRepo.ErrSlotOccupied):
				uc.logger.Warn("ConfirmMeetingRequest: slot %s taken concurrently", slot.Start.Format(time.RFC3339))
				return ErrSlotTaken
			case errors.Is(err, meetingRepo.ErrDuplicateMeetingRequest):
				uc.logger.Warn("ConfirmMeetingRequest: meeting for request id=%d already exists", req.RequestID)
				return ErrInvalidState
			}
			uc.logger.Error("ConfirmMeetingRequest: failed to create meeting: %v", err)
			return fmt.Errorf("%w: failed to create meeting: %v", ErrInternal, err)
		}

		// 2.6. Условная смена статуса
		start := slot.Start
		updated, err := uc.requestRepo.UpdateStatus(txCtx, request.ID,
			domain.MeetingRequestPending, domain.MeetingRequestConfirmed, &start)
		if err != nil {
			if errors.Is(err, meetingRequestRepo.ErrStatusChanged) {
				uc.logger.Warn("ConfirmMeetingRequest: request id=%d changed status concurrently", req.RequestID)
				return ErrInvalidState
			}
			uc.logger.Error("ConfirmMeetingRequest: failed to update request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to update meeting request: %v", ErrInternal, err)
		}

		confirmed = updated
		meeting = created
		return nil
	})

	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("ConfirmMeetingRequest: serialization conflict for request id=%d", req.RequestID)
			return nil, ErrConcurrentUpdate
		}
		return nil, err
	}

	uc.metrics.RecordTransition(string(domain.MeetingRequestConfirmed))

	// 3. Уведомление после коммита; ошибка не откатывает подтверждение
	if err := uc.notifier.MeetingRequestConfirmed(ctx, confirmed, meeting); err != nil {
		uc.logger.Warn("ConfirmMeetingRequest: failed to notify about request id=%d: %v", confirmed.ID, err)
		uc.metrics.RecordNotificationFailure(notifications.EventMeetingRequestConfirmed)
	}

	uc.logger.Info("ConfirmMeetingRequest: request id=%d confirmed, meeting id=%d at %s",
		confirmed.ID, meeting.ID, meeting.ScheduledAt.Format(time.RFC3339))

	return toResponse(confirmed, meeting), nil
}

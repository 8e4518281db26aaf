package meeting_requests

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	meetingRequestRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/meeting_request"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/notifications"
	"github.com/m04kA/SMC-SchedulingService/internal/service/meeting_requests/models"
)

// Service сервис просмотра и отмены заявок на встречу
type Service struct {
	requestRepo MeetingRequestRepository
	notifier    Notifier
	metrics     MetricsRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	requestRepo MeetingRequestRepository,
	notifier Notifier,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		requestRepo: requestRepo,
		notifier:    notifier,
		metrics:     metrics,
		logger:      logger,
	}
}

// List возвращает заявки, опционально по статусу, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListMeetingRequestsRequest) ([]*models.MeetingRequestResponse, error) {
	var filter domain.MeetingRequestFilter
	if req != nil && req.Status != nil {
		status, err := domain.ParseMeetingRequestStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	requests, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainList(requests), nil
}

// GetByID возвращает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.MeetingRequestResponse, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}
	return models.FromDomain(req), nil
}

// Cancel переводит заявку pending -> cancelled
// Встречи не создаются и не удаляются
func (s *Service) Cancel(ctx context.Context, id int64) (*models.MeetingRequestResponse, error) {
	s.logger.Info("Cancel: cancelling meeting request id=%d", id)

	// 1. Получаем заявку
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Cancel", id, err)
	}

	// 2. Проверяем переход
	if err := req.Cancel(); err != nil {
		s.logger.Warn("Cancel: meeting request id=%d: %v", id, err)
		return nil, ErrInvalidState
	}

	// 3. Условное обновление: параллельное подтверждение или отмена не будут перезаписаны
	updated, err := s.requestRepo.UpdateStatus(ctx, id, domain.MeetingRequestPending, domain.MeetingRequestCancelled, nil)
	if err != nil {
		if errors.Is(err, meetingRequestRepo.ErrStatusChanged) {
			s.logger.Warn("Cancel: meeting request id=%d changed status concurrently", id)
			return nil, ErrInvalidState
		}
		return nil, s.mapRepoError("Cancel", id, err)
	}

	s.metrics.RecordTransition(string(domain.MeetingRequestCancelled))

	// 4. Уведомление не влияет на результат
	if err := s.notifier.MeetingRequestCancelled(ctx, updated); err != nil {
		s.logger.Warn("Cancel: failed to notify about meeting request id=%d: %v", id, err)
		s.metrics.RecordNotificationFailure(notifications.EventMeetingRequestCancelled)
	}

	s.logger.Info("Cancel: meeting request id=%d cancelled", id)
	return models.FromDomain(updated), nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, meetingRequestRepo.ErrMeetingRequestNotFound) {
		s.logger.Warn("%s: meeting request id=%d not found", op, id)
		return ErrMeetingRequestNotFound
	}
	s.logger.Error("%s: repository error for meeting request id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

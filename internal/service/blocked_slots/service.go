package blocked_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	blockedRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/blocked_slot"
	"github.com/m04kA/SMC-SchedulingService/internal/service/blocked_slots/models"
)

// Service сервис ручных блокировок календаря
// Блокировка не редактируется: только создание и удаление
type Service struct {
	blockedRepo BlockedSlotRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockedRepo BlockedSlotRepository, logger Logger) *Service {
	return &Service{
		blockedRepo: blockedRepo,
		logger:      logger,
	}
}

// List возвращает блокировки, пересекающиеся с [from, to)
func (s *Service) List(ctx context.Context, from, to time.Time) ([]*models.BlockedSlotResponse, error) {
	if !from.Before(to) {
		s.logger.Warn("List: invalid range from=%s, to=%s", from, to)
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	slots, err := s.blockedRepo.ListOverlapping(ctx, from, to)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainList(slots), nil
}

// Create блокирует интервал [StartTime, EndTime)
func (s *Service) Create(ctx context.Context, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("Create: blocking %s - %s by user=%d", req.StartTime, req.EndTime, req.UserID)

	// 1. Валидация
	req.Reason = strings.TrimSpace(req.Reason)
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		s.logger.Warn("Create: missing start or end time")
		return nil, fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if !req.StartTime.Before(req.EndTime) {
		s.logger.Warn("Create: start=%s is not before end=%s", req.StartTime, req.EndTime)
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Reason) > domain.MaxReasonLength {
		s.logger.Warn("Create: reason is too long")
		return nil, fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	// 2. Сохранение
	created, err := s.blockedRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: blocked slot id=%d created", created.ID)
	return models.FromDomain(created), nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing blocked slot id=%d", id)

	slot, err := s.blockedRepo.GetByID(ctx, id)
	if err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	if err := s.blockedRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: blocked slot id=%d (%s - %s) removed", id, slot.StartTime, slot.EndTime)
	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, blockedRepo.ErrBlockedSlotNotFound) {
		s.logger.Warn("%s: blocked slot id=%d not found", op, id)
		return ErrBlockedSlotNotFound
	}
	s.logger.Error("%s: repository error for blocked slot id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

package availability_checks

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability_request"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/notifications"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability_checks/models"
)

// Settings параметры протокола опроса
type Settings struct {
	PublicBaseURL string        // база для ссылок в письме сотрудникам
	PollInterval  time.Duration // подсказка клиенту, как часто опрашивать
	Timeout       time.Duration // после этого клиент прекращает опрос
	Retention     time.Duration // сколько хранить неразрешенные запросы
}

// Service серверная часть протокола "свободен ли кто-то прямо сейчас"
// Посетитель создает запрос и опрашивает его статус, сотрудник отвечает по подписанной ссылке
type Service struct {
	repo         AvailabilityRequestRepository
	signer       LinkSigner
	notifier     Notifier
	metrics      MetricsRecorder
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	repo AvailabilityRequestRepository,
	signer LinkSigner,
	notifier Notifier,
	metrics MetricsRecorder,
	settings Settings,
	logger Logger,
) *Service {
	if settings.PollInterval <= 0 {
		settings.PollInterval = domain.AvailabilityPollInterval
	}
	if settings.Timeout <= 0 {
		settings.Timeout = domain.AvailabilityPollTimeout
	}
	settings.PublicBaseURL = strings.TrimRight(settings.PublicBaseURL, "/")

	return &Service{
		repo:         repo,
		signer:       signer,
		notifier:     notifier,
		metrics:      metrics,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Submit регистрирует запрос и рассылает сотрудникам ссылки с двумя исходами
func (s *Service) Submit(ctx context.Context, req *models.SubmitRequest) (*models.AvailabilityRequestResponse, error) {
	// 1. Валидация контактов
	contact := req.ToContact().Normalize()
	if err := contact.Validate(); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("Submit: availability request from email=%s", contact.Email)

	// 2. Сохранение
	now := s.timeProvider.Now()
	created, err := s.repo.Create(ctx, &domain.AvailabilityRequest{
		ID:        uuid.New(),
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Company:   contact.Company,
		Message:   contact.Message,
		Status:    domain.AvailabilityPending,
		CreatedAt: now,
	})
	if err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	// 3. Ссылки и уведомление; ошибка здесь не отменяет запрос, клиент просто дождется таймаута
	links, err := s.resolveLinks(created.ID)
	if err != nil {
		s.logger.Error("Submit: failed to sign resolve links for id=%s: %v", created.ID, err)
		s.metrics.RecordNotificationFailure(notifications.EventAvailabilityRequestCreated)
	} else if err := s.notifier.AvailabilityRequestCreated(ctx, created, links); err != nil {
		s.logger.Warn("Submit: failed to notify about availability request id=%s: %v", created.ID, err)
		s.metrics.RecordNotificationFailure(notifications.EventAvailabilityRequestCreated)
	}

	s.logger.Info("Submit: availability request id=%s created", created.ID)
	return models.FromDomain(created, s.settings.PollInterval, s.settings.Timeout, now), nil
}

// Get возвращает текущий статус запроса для опроса клиентом
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.AvailabilityRequestResponse, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Get", id, err)
	}
	return models.FromDomain(req, s.settings.PollInterval, s.settings.Timeout, s.timeProvider.Now()), nil
}

// Resolve фиксирует ответ сотрудника по подписанной ссылке
// Повтор того же исхода ничего не меняет, другой исход после ответа отклоняется
func (s *Service) Resolve(ctx context.Context, id uuid.UUID, token string) (*models.AvailabilityRequestResponse, error) {
	// 1. Проверка подписи и исхода
	outcome, err := s.signer.Verify(token, id)
	if err != nil {
		s.logger.Warn("Resolve: rejected token for id=%s: %v", id, err)
		return nil, ErrInvalidToken
	}
	status, ok := domain.ParseAvailabilityOutcome(outcome)
	if !ok {
		s.logger.Warn("Resolve: token for id=%s carries unknown outcome %q", id, outcome)
		return nil, ErrInvalidToken
	}

	s.logger.Info("Resolve: resolving availability request id=%s as %s", id, status)

	// 2. Условный переход pending -> outcome
	now := s.timeProvider.Now()
	resolved, err := s.repo.Resolve(ctx, id, status, now)
	if err == nil {
		s.logger.Info("Resolve: availability request id=%s resolved as %s", id, status)
		return models.FromDomain(resolved, s.settings.PollInterval, s.settings.Timeout, now), nil
	}
	if !errors.Is(err, availabilityRepo.ErrNotPending) {
		return nil, s.mapRepoError("Resolve", id, err)
	}

	// 3. Запрос уже разрешен или отсутствует
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Resolve", id, err)
	}
	if existing.Status != status {
		s.logger.Warn("Resolve: availability request id=%s already resolved as %s", id, existing.Status)
		return nil, ErrAlreadyResolved
	}

	s.logger.Info("Resolve: availability request id=%s already resolved as %s, nothing to do", id, status)
	return models.FromDomain(existing, s.settings.PollInterval, s.settings.Timeout, now), nil
}

// PurgeStale удаляет неразрешенные запросы старше срока хранения
func (s *Service) PurgeStale(ctx context.Context) (int64, error) {
	if s.settings.Retention <= 0 {
		return 0, nil
	}

	cutoff := s.timeProvider.Now().Add(-s.settings.Retention)
	n, err := s.repo.DeletePendingOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("PurgeStale: repository error: %v", err)
		return 0, fmt.Errorf("%w: PurgeStale - repository error: %v", ErrInternal, err)
	}

	s.metrics.AddPurgedAvailabilityRequests(n)
	if n > 0 {
		s.logger.Info("PurgeStale: removed %d pending availability requests created before %s", n, cutoff.Format(time.RFC3339))
	}
	return n, nil
}

func (s *Service) resolveLinks(id uuid.UUID) (notifications.ResolveLinks, error) {
	available, err := s.resolveLink(id, domain.AvailabilityAvailable)
	if err != nil {
		return notifications.ResolveLinks{}, err
	}
	unavailable, err := s.resolveLink(id, domain.AvailabilityUnavailable)
	if err != nil {
		return notifications.ResolveLinks{}, err
	}
	return notifications.ResolveLinks{Available: available, Unavailable: unavailable}, nil
}

func (s *Service) resolveLink(id uuid.UUID, outcome domain.AvailabilityRequestStatus) (string, error) {
	token, err := s.signer.Sign(id, string(outcome))
	if err != nil {
		return "", err
	}
	query := url.Values{"token": []string{token}}
	return fmt.Sprintf("%s/api/v1/availability-requests/%s/resolve?%s", s.settings.PublicBaseURL, id, query.Encode()), nil
}

func (s *Service) mapRepoError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, availabilityRepo.ErrAvailabilityRequestNotFound) {
		s.logger.Warn("%s: availability request id=%s not found", op, id)
		return ErrAvailabilityRequestNotFound
	}
	s.logger.Error("%s: repository error for availability request id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

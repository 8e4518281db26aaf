package schedulingclient

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPollInterval = 2 * time.Second
	DefaultPollTimeout  = 180 * time.Second
)

// Poller ждет ответа сотрудника на запрос "есть ли кто-то свободный"
// Отмена ctx только прекращает опрос: запись на сервере остается и может быть разрешена позже
type Poller struct {
	getter   StatusGetter
	interval time.Duration
	timeout  time.Duration
	log      Logger
}

// NewPoller создает Poller; нулевые interval и timeout заменяются значениями по умолчанию
func NewPoller(getter StatusGetter, interval, timeout time.Duration, log Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}
	return &Poller{
		getter:   getter,
		interval: interval,
		timeout:  timeout,
		log:      log,
	}
}

// NewPollerFromHints берет период и потолок опроса из ответа сервиса
func NewPollerFromHints(getter StatusGetter, req *AvailabilityRequest, log Logger) *Poller {
	return NewPoller(getter,
		time.Duration(req.PollIntervalSeconds)*time.Second,
		time.Duration(req.TimeoutSeconds)*time.Second,
		log,
	)
}

// Wait опрашивает статус до ответа, таймаута или отмены ctx
// Сетевые ошибки не прерывают опрос; ErrNotFound прерывает
func (p *Poller) Wait(ctx context.Context, id uuid.UUID) (Outcome, error) {
	timer := time.NewTimer(p.timeout)
	defer timer.Stop()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		outcome, done, err := p.poll(ctx, id)
		if err != nil {
			return "", err
		}
		if done {
			p.log.Info("Poller: availability request id=%s finished with outcome=%s", id, outcome)
			return outcome, nil
		}

		select {
		case <-ctx.Done():
			p.log.Info("Poller: stopped polling id=%s: %v", id, ctx.Err())
			return "", ctx.Err()
		case <-timer.C:
			p.log.Info("Poller: no answer for id=%s within %s", id, p.timeout)
			return OutcomeTimeout, nil
		case <-ticker.C:
		}
	}
}

func (p *Poller) poll(ctx context.Context, id uuid.UUID) (Outcome, bool, error) {
	req, err := p.getter.GetAvailabilityRequest(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", false, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", false, ctxErr
		}
		p.log.Warn("Poller: failed to get status for id=%s, retrying: %v", id, err)
		return "", false, nil
	}

	switch Outcome(req.Status) {
	case OutcomeAvailable:
		return OutcomeAvailable, true, nil
	case OutcomeUnavailable:
		return OutcomeUnavailable, true, nil
	}

	if req.Expired {
		return OutcomeTimeout, true, nil
	}
	return "", false, nil
}

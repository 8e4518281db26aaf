package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Publisher публикует события в NATS для внешнего сервиса рассылки
// Без соединения события только логируются
type Publisher struct {
	conn   Conn
	prefix string
	logger Logger
	now    func() time.Time
}

// Connect подключается к NATS
func Connect(url, prefix string, logger Logger) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("scheduling-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnect, url, err)
	}

	logger.Info("Notifications: connected to NATS at %s", url)
	return NewPublisher(nc, prefix, logger), nil
}

// NewPublisher создает publisher поверх соединения; conn может быть nil
func NewPublisher(conn Conn, prefix string, logger Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		prefix: prefix,
		logger: logger,
		now:    time.Now,
	}
}

// Close закрывает соединение
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

// MeetingRequestCreated уведомление о новой заявке
func (p *Publisher) MeetingRequestCreated(ctx context.Context, req *domain.MeetingRequest) error {
	return p.publish(ctx, &Event{
		Type:           EventMeetingRequestCreated,
		MeetingRequest: fromMeetingRequest(req),
	})
}

// MeetingRequestConfirmed уведомление о подтверждении со ссылкой на встречу
func (p *Publisher) MeetingRequestConfirmed(ctx context.Context, req *domain.MeetingRequest, meeting *domain.Meeting) error {
	return p.publish(ctx, &Event{
		Type:           EventMeetingRequestConfirmed,
		MeetingRequest: fromMeetingRequest(req),
		Meeting:        fromMeeting(meeting),
	})
}

// MeetingRequestCancelled уведомление об отмене заявки
func (p *Publisher) MeetingRequestCancelled(ctx context.Context, req *domain.MeetingRequest) error {
	return p.publish(ctx, &Event{
		Type:           EventMeetingRequestCancelled,
		MeetingRequest: fromMeetingRequest(req),
	})
}

// AvailabilityRequestCreated оповещение сотрудников о запросе на немедленный звонок
func (p *Publisher) AvailabilityRequestCreated(ctx context.Context, req *domain.AvailabilityRequest, links ResolveLinks) error {
	return p.publish(ctx, &Event{
		Type:                EventAvailabilityRequestCreated,
		AvailabilityRequest: fromAvailabilityRequest(req, links),
	})
}

func (p *Publisher) publish(ctx context.Context, event *Event) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, event.Type, err)
	}

	event.Timestamp = p.now().UTC()
	subject := p.subject(event.Type)

	if p.conn == nil {
		p.logger.Info("Notifications: NATS disabled, dropping %s", subject)
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMarshal, event.Type, err)
	}

	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, subject, err)
	}

	p.logger.Info("Notifications: published %s", subject)
	return nil
}

func (p *Publisher) subject(eventType string) string {
	if p.prefix == "" {
		return eventType
	}
	return p.prefix + "." + eventType
}

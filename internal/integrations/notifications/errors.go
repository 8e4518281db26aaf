package notifications

import "errors"

var (
	// ErrConnect возвращается, если не удалось подключиться к NATS
	ErrConnect = errors.New("notifications: failed to connect")

	// ErrMarshal возвращается при ошибке сериализации события
	ErrMarshal = errors.New("notifications: failed to marshal event")

	// ErrPublish возвращается при ошибке публикации
	ErrPublish = errors.New("notifications: failed to publish event")
)

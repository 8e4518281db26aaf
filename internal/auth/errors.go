package auth

import "errors"

var (
	// ErrBadToken токен не прошел проверку подписи, срока или формата
	ErrBadToken = errors.New("auth: invalid token")

	// ErrLinkMismatch ссылка выпущена для другого запроса
	ErrLinkMismatch = errors.New("auth: resolve link does not match request")
)

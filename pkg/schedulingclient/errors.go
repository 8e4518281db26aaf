package schedulingclient

import "errors"

var (
	// ErrNotFound ресурс не найден (404)
	ErrNotFound = errors.New("schedulingclient: not found")

	// ErrBadRequest запрос отклонен валидацией сервиса (400)
	ErrBadRequest = errors.New("schedulingclient: bad request")

	// ErrUnauthorized нет или неверный токен администратора (401/403)
	ErrUnauthorized = errors.New("schedulingclient: unauthorized")

	// ErrConflict операция конфликтует с текущим состоянием (409)
	ErrConflict = errors.New("schedulingclient: conflict")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("schedulingclient: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("schedulingclient: invalid response")
)

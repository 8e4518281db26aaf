package policy

import "errors"

var (
	// ErrReadFile возвращается, когда файл политики не удалось прочитать
	ErrReadFile = errors.New("policy: failed to read file")

	// ErrParse возвращается при некорректном YAML
	ErrParse = errors.New("policy: failed to parse file")

	// ErrInvalidPolicy возвращается, когда политика не проходит валидацию
	ErrInvalidPolicy = errors.New("policy: invalid availability policy")
)

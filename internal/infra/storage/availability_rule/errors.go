package availability_rule

import "errors"

var (
	// ErrRulesNotFound возвращается, когда правила в БД не заданы
	ErrRulesNotFound = errors.New("availability_rule.repository: rules not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability_rule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability_rule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability_rule.repository: failed to scan row")
)

package token

import "errors"

var (
	// ErrTokenNotFound возвращается, когда токен доступа не найден
	ErrTokenNotFound = errors.New("token.repository: token not found")

	// ErrAlreadyUsed возвращается при попытке повторно погасить токен
	ErrAlreadyUsed = errors.New("token.repository: token already used")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("token.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("token.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("token.repository: failed to scan row")
)

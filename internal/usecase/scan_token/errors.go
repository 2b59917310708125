package scan_token

import "errors"

var (
	// ErrTokenNotFound возвращается, когда токен не найден или не относится к бронированию
	ErrTokenNotFound = errors.New("scan_token: token not found")

	// ErrTokenAlreadyUsed возвращается, когда токен погашен, а бронирование уже завершено
	ErrTokenAlreadyUsed = errors.New("scan_token: token already used")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("scan_token: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("scan_token: internal error")
)

package exit_scan

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("exit_scan: booking not found")

	// ErrTokenNotFound возвращается, когда токен не найден или не относится к бронированию
	ErrTokenNotFound = errors.New("exit_scan: token not found")

	// ErrTokenAlreadyUsed возвращается, когда токен уже погашен
	ErrTokenAlreadyUsed = errors.New("exit_scan: token already used")

	// ErrInvalidState возвращается, когда бронирование не в статусе active
	ErrInvalidState = errors.New("exit_scan: booking is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("exit_scan: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("exit_scan: internal error")
)

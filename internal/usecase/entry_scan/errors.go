package entry_scan

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("entry_scan: booking not found")

	// ErrTokenNotFound возвращается, когда токен не найден или не относится к бронированию
	ErrTokenNotFound = errors.New("entry_scan: token not found")

	// ErrTokenAlreadyUsed возвращается, когда токен уже погашен
	ErrTokenAlreadyUsed = errors.New("entry_scan: token already used")

	// ErrInvalidState возвращается, когда бронирование не в статусе pending
	ErrInvalidState = errors.New("entry_scan: booking is not awaiting entry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("entry_scan: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("entry_scan: internal error")
)

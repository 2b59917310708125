package get_available_slots

import "errors"

var (
	// ErrCentreNotFound возвращается, когда парковочный центр не найден
	ErrCentreNotFound = errors.New("get_available_slots: centre not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

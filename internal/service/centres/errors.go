package centres

import "errors"

var (
	// ErrCentreNotFound возвращается, когда парковочный центр не найден
	ErrCentreNotFound = errors.New("centre not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

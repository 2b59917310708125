package vehicles

import "errors"

var (
	// ErrDuplicateNumber возвращается при повторной регистрации номера
	ErrDuplicateNumber = errors.New("vehicle number already registered")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

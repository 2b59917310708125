package memberships

import "errors"

var (
	// ErrPlanNotFound возвращается, когда тарифный план не найден
	ErrPlanNotFound = errors.New("membership plan not found")

	// ErrAlreadySubscribed возвращается, когда у пользователя уже есть активная подписка
	ErrAlreadySubscribed = errors.New("user already has an active membership")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят или зарезервирован
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrVehicleNotFound возвращается, когда транспортное средство не найдено
	ErrVehicleNotFound = errors.New("create_booking: vehicle not found")

	// ErrVehicleNotOwned возвращается, когда транспорт принадлежит другому пользователю
	ErrVehicleNotOwned = errors.New("create_booking: vehicle belongs to another user")

	// ErrVehicleTypeMismatch возвращается, когда тип транспорта не совпадает с типом слота
	ErrVehicleTypeMismatch = errors.New("create_booking: vehicle type does not match slot type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

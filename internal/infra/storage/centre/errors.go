package centre

import "errors"

var (
	// ErrCentreNotFound возвращается, когда парковочный центр не найден
	ErrCentreNotFound = errors.New("centre.repository: centre not found")

	// ErrZoneNotFound возвращается, когда зона не найдена
	ErrZoneNotFound = errors.New("centre.repository: zone not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("centre.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("centre.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("centre.repository: failed to scan row")
)

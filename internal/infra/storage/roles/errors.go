package roles

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда у сотрудника нет привязки к центру
	ErrAssignmentNotFound = errors.New("roles.repository: staff assignment not found")

	// ErrNoAttendants возвращается, когда в системе нет ни одного дежурного
	ErrNoAttendants = errors.New("roles.repository: no attendants registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("roles.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("roles.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("roles.repository: failed to scan row")
)

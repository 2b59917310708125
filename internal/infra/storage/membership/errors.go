package membership

import "errors"

var (
	// ErrPlanNotFound возвращается, когда тарифный план не найден
	ErrPlanNotFound = errors.New("membership.repository: plan not found")

	// ErrMembershipNotFound возвращается, когда у пользователя нет активной подписки
	ErrMembershipNotFound = errors.New("membership.repository: membership not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("membership.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("membership.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("membership.repository: failed to scan row")
)

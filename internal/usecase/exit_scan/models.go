package exit_scan

import "time"

// Request модель запроса на завершение бронирования при выезде
// Принимает либо содержимое QR-кода, либо пару bookingID+tokenCode
type Request struct {
	QRData    string // Содержимое отсканированного QR-кода
	BookingID string // ID бронирования (если QR не передан)
	TokenCode string // Код токена (если QR не передан)
}

// Response модель ответа после завершения бронирования
type Response struct {
	BookingID   string    // ID бронирования
	Status      string    // Новый статус (completed)
	ActualStart time.Time // Фактическое время въезда
	ActualEnd   time.Time // Фактическое время выезда
	ActualHours int       // Фактические тарифицируемые часы

	// Расчетный платеж за фактические часы, создается со статусом pending
	SettlementAmount float64 // Фактические часы по тарифу слота

	// Перепробег (0, если уложились в оплаченное время)
	ExtraHours  int     // Часы сверх оплаченных
	ExtraAmount float64 // Стоимость часов сверх оплаченных
}

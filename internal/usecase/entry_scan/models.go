package entry_scan

import "time"

// Request модель запроса на активацию бронирования при въезде
// Принимает либо содержимое QR-кода, либо пару bookingID+tokenCode
type Request struct {
	QRData    string // Содержимое отсканированного QR-кода
	BookingID string // ID бронирования (если QR не передан)
	TokenCode string // Код токена (если QR не передан)
}

// Response модель ответа после активации бронирования
type Response struct {
	BookingID   string    // ID бронирования
	Status      string    // Новый статус (active)
	ActualStart time.Time // Фактическое время въезда

	// Куда направить водителя
	SlotNumber  string // Номер слота
	ZoneName    string // Название зоны
	FloorNumber *int   // Этаж (если есть)
	CentreName  string // Название центра
}

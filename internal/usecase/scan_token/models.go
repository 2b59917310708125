package scan_token

import "time"

// Request модель запроса на проверку токена доступа
// Принимает либо содержимое QR-кода, либо пару bookingID+tokenCode
type Request struct {
	QRData    string // Содержимое отсканированного QR-кода
	BookingID string // ID бронирования (если QR не передан)
	TokenCode string // Код токена (если QR не передан)
}

// Response модель ответа после проверки токена
type Response struct {
	TokenCode     string     // Код токена
	BookingID     string     // ID бронирования
	BookingStatus string     // Текущий статус бронирования
	IsUsed        bool       // Токен уже погашен при выезде
	UsedAt        *time.Time // Момент гашения, если токен погашен

	// Контекст для дежурного на воротах
	SlotNumber string // Номер слота
	ZoneName   string // Название зоны
	CentreName string // Название центра
}

package create_booking

import (
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID        string               // ID пользователя
	SlotID        string               // ID парковочного слота
	VehicleID     string               // ID транспортного средства
	BookingStart  time.Time            // Запланированное время въезда
	BookingEnd    time.Time            // Запланированное время выезда
	PaymentMethod domain.PaymentMethod // Способ оплаты
	UsePoints     int                  // Сколько баллов лояльности списать (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID    string    // ID созданного бронирования
	UserID       string    // ID пользователя
	SlotID       string    // ID слота
	VehicleID    string    // ID транспортного средства
	BookingStart time.Time // Запланированное время въезда
	BookingEnd   time.Time // Запланированное время выезда
	TotalHours   int       // Тарифицируемые часы
	Status       string    // Статус бронирования

	// Детализация стоимости
	BaseAmount         float64 // Базовая стоимость (часы * тариф)
	MembershipDiscount float64 // Скидка по подписке
	PointsDiscount     float64 // Скидка за списанные баллы
	TotalAmount        float64 // Итог к оплате
	PointsEarned       int     // Начислено баллов
	PointsRedeemed     int     // Списано баллов

	// Токен доступа
	TokenCode string // Код токена для въезда/выезда
	QRData    string // Содержимое QR-кода

	CreatedAt time.Time // Время создания
}

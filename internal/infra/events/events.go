package events

import "time"

// Типы событий жизненного цикла бронирования
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingActivated = "booking.activated"
	TypeBookingCompleted = "booking.completed"
	TypeBookingCancelled = "booking.cancelled"
	TypeBookingExpired   = "booking.expired"
)

// BookingEvent событие изменения бронирования для внешних подписчиков
// Публикуется после фиксации транзакции, доставка не гарантируется
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	UserID     string    `json:"user_id"`
	SlotID     string    `json:"slot_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of a parking slot by a vehicle
type Booking struct {
	ID           string
	UserID       string
	VehicleID    string
	SlotID       string
	BookingStart time.Time
	BookingEnd   time.Time
	ActualStart  *time.Time
	ActualEnd    *time.Time
	TotalHours   int
	Status       BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the booking reached a terminal state
// (no outgoing transitions)
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusActive
}

// CanEnter returns true if an entry scan may activate the booking
func (b *Booking) CanEnter() bool {
	return b.Status == StatusPending
}

// CanExit returns true if an exit scan may complete the booking
func (b *Booking) CanExit() bool {
	return b.Status == StatusActive
}

// CentreBookingsFilter фильтр для получения бронирований центра
type CentreBookingsFilter struct {
	CentreID        string         // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли терминальные бронирования
}

package bookings

import (
	"context"
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/infra/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByCentreWithFilter(ctx context.Context, filter domain.CentreBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string, now time.Time) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	UpdateStatusIf(ctx context.Context, id string, from, to domain.SlotStatus) error
	GetLocation(ctx context.Context, id string) (*domain.SlotLocation, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByBookingID(ctx context.Context, bookingID string) ([]*domain.Payment, error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}

// RolesRepository интерфейс репозитория ролей и привязок персонала
type RolesRepository interface {
	GetManagerCentre(ctx context.Context, userID string) (string, error)
	GetAttendantCentre(ctx context.Context, userID string) (string, error)
}

// EventPublisher интерфейс издателя событий бронирований
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event events.BookingEvent)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

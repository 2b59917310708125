package entry_scan

import (
	"context"
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/infra/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	MarkEntered(ctx context.Context, id string, actualStart time.Time) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	UpdateStatusIf(ctx context.Context, id string, from, to domain.SlotStatus) error
	GetLocation(ctx context.Context, id string) (*domain.SlotLocation, error)
}

// TokenRepository интерфейс репозитория токенов доступа
type TokenRepository interface {
	GetByCode(ctx context.Context, bookingID, code string) (*domain.Token, error)
}

// EventPublisher интерфейс издателя событий бронирований
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event events.BookingEvent)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

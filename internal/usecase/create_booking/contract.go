package create_booking

import (
	"context"
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/infra/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ParkingSlot, error)
	UpdateStatusIf(ctx context.Context, id string, from, to domain.SlotStatus) error
}

// VehicleRepository интерфейс репозитория транспортных средств
type VehicleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
}

// MembershipRepository интерфейс репозитория подписок
type MembershipRepository interface {
	GetActiveByUserID(ctx context.Context, userID string) (*domain.UserMembership, error)
	GetPlanByID(ctx context.Context, id string) (*domain.MembershipPlan, error)
}

// LoyaltyRepository интерфейс репозитория баллов лояльности
type LoyaltyRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.LoyaltyPoints, error)
	Adjust(ctx context.Context, userID string, earned, redeemed int) error
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
}

// TokenRepository интерфейс репозитория токенов доступа
type TokenRepository interface {
	Create(ctx context.Context, token *domain.Token) (*domain.Token, error)
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

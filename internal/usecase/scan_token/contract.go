package scan_token

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// TokenRepository интерфейс репозитория токенов доступа
type TokenRepository interface {
	GetByCode(ctx context.Context, bookingID, code string) (*domain.Token, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetLocation(ctx context.Context, id string) (*domain.SlotLocation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

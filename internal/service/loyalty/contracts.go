package loyalty

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// LoyaltyRepository интерфейс репозитория баллов лояльности
type LoyaltyRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.LoyaltyPoints, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

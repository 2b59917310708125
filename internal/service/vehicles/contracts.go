package vehicles

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// VehicleRepository интерфейс репозитория транспортных средств
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetByUserID(ctx context.Context, userID string) ([]*domain.Vehicle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_available_slots

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// CentreRepository интерфейс репозитория центров
type CentreRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ParkingCentre, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListAvailableByCentre(ctx context.Context, centreID string, vehicleType *domain.VehicleType) ([]*domain.AvailableSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

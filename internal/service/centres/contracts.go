package centres

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// CentreRepository интерфейс репозитория центров
type CentreRepository interface {
	List(ctx context.Context, city *string) ([]*domain.ParkingCentre, error)
	GetByID(ctx context.Context, id string) (*domain.ParkingCentre, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

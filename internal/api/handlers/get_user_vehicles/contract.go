package get_user_vehicles

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/service/vehicles/models"
)

type VehicleService interface {
	ListByUser(ctx context.Context, userID string, identity domain.Identity) (*models.VehicleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

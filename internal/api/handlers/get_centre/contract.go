package get_centre

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/service/centres/models"
)

type CentreService interface {
	GetByID(ctx context.Context, id string) (*models.CentreResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_centres

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/service/centres/models"
)

type CentreService interface {
	List(ctx context.Context, city *string) (*models.CentreListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

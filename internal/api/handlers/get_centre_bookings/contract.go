package get_centre_bookings

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetCentreBookings(ctx context.Context, req *models.GetCentreBookingsRequest, identity domain.Identity) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

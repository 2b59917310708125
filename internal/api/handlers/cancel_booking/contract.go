package cancel_booking

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID string, identity domain.Identity) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_loyalty_points

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/service/loyalty"
)

type LoyaltyService interface {
	GetBalance(ctx context.Context, userID string, identity domain.Identity) (*loyalty.BalanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

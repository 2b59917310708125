package subscribe_membership

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/service/memberships/models"
)

type MembershipService interface {
	Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.MembershipResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

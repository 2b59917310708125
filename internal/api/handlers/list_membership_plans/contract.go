package list_membership_plans

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/service/memberships/models"
)

type MembershipService interface {
	ListPlans(ctx context.Context) (*models.PlanListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

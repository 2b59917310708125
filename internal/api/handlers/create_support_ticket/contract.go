package create_support_ticket

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/service/support/models"
)

type SupportService interface {
	CreateTicket(ctx context.Context, req *models.CreateTicketRequest) (*models.TicketResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package support

import (
	"context"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// TicketRepository интерфейс репозитория тикетов поддержки
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.SupportTicket) (*domain.SupportTicket, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.SupportTicket, error)
	ListByAssignee(ctx context.Context, userID string) ([]*domain.SupportTicket, error)
	ListAll(ctx context.Context) ([]*domain.SupportTicket, error)
}

// RolesRepository интерфейс репозитория ролей и привязок персонала
type RolesRepository interface {
	GetRandomAttendant(ctx context.Context) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

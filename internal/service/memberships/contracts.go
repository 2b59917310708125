package memberships

import (
	"context"
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// MembershipRepository интерфейс репозитория тарифных планов и подписок
type MembershipRepository interface {
	ListPlans(ctx context.Context) ([]*domain.MembershipPlan, error)
	GetPlanByID(ctx context.Context, id string) (*domain.MembershipPlan, error)
	GetActiveByUserID(ctx context.Context, userID string) (*domain.UserMembership, error)
	Create(ctx context.Context, membership *domain.UserMembership) (*domain.UserMembership, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

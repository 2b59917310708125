package worker

import (
	"context"
	"errors"
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/infra/events"
	bookingRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetExpiredPending(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string, now time.Time) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	UpdateStatusIf(ctx context.Context, id string, from, to domain.SlotStatus) error
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByBookingID(ctx context.Context, bookingID string) ([]*domain.Payment, error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}

// MembershipRepository интерфейс репозитория подписок
type MembershipRepository interface {
	ExpireOutdated(ctx context.Context) (int64, error)
}

// EventPublisher интерфейс публикации событий
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event events.BookingEvent)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Expirer фоновый воркер: отменяет pending-бронирования, по которым
// водитель так и не въехал, и закрывает истекшие подписки
type Expirer struct {
	bookingRepo    BookingRepository
	slotRepo       SlotRepository
	paymentRepo    PaymentRepository
	membershipRepo MembershipRepository
	publisher      EventPublisher
	txManager      TransactionManager
	logger         Logger

	pendingTTL time.Duration
	interval   time.Duration
}

// NewExpirer создает новый экземпляр воркера
func NewExpirer(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	paymentRepo PaymentRepository,
	membershipRepo MembershipRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	pendingTTL time.Duration,
	interval time.Duration,
	logger Logger,
) *Expirer {
	return &Expirer{
		bookingRepo:    bookingRepo,
		slotRepo:       slotRepo,
		paymentRepo:    paymentRepo,
		membershipRepo: membershipRepo,
		publisher:      publisher,
		txManager:      txManager,
		pendingTTL:     pendingTTL,
		interval:       interval,
		logger:         logger,
	}
}

// Run запускает периодический обход, блокируется до отмены контекста
func (e *Expirer) Run(ctx context.Context) {
	e.logger.Info("Expirer: started, interval=%s, pending_ttl=%s", e.interval, e.pendingTTL)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Expirer: stopped")
			return
		case <-ticker.C:
			e.sweep(ctx)
		}
	}
}

// sweep выполняет один проход: просроченные бронирования + подписки
func (e *Expirer) sweep(ctx context.Context) {
	now := time.Now()
	cutoff := now.Add(-e.pendingTTL)

	expired, err := e.bookingRepo.GetExpiredPending(ctx, cutoff)
	if err != nil {
		e.logger.Error("Expirer: failed to fetch expired bookings: %v", err)
		return
	}

	for _, booking := range expired {
		if err := e.expireBooking(ctx, booking, now); err != nil {
			e.logger.Error("Expirer: failed to expire booking id=%s: %v", booking.ID, err)
			continue
		}
		e.logger.Info("Expirer: booking id=%s expired, slot id=%s released", booking.ID, booking.SlotID)
	}

	count, err := e.membershipRepo.ExpireOutdated(ctx)
	if err != nil {
		e.logger.Error("Expirer: failed to expire memberships: %v", err)
		return
	}
	if count > 0 {
		e.logger.Info("Expirer: expired %d outdated memberships", count)
	}
}

// expireBooking отменяет одно просроченное бронирование:
// отмена, освобождение слота и возврат платежей в одной транзакции
func (e *Expirer) expireBooking(ctx context.Context, booking *domain.Booking, now time.Time) error {
	skipped := false

	err := e.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Условная отмена: если статус уже сменился, пропускаем
		if err := e.bookingRepo.Cancel(txCtx, booking.ID, now); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				e.logger.Warn("Expirer: booking id=%s changed status concurrently, skipping", booking.ID)
				skipped = true
				return nil
			}
			return err
		}

		if err := e.slotRepo.UpdateStatusIf(txCtx, booking.SlotID, domain.SlotReserved, domain.SlotAvailable); err != nil {
			return err
		}

		payments, err := e.paymentRepo.GetByBookingID(txCtx, booking.ID)
		if err != nil {
			return err
		}

		for _, p := range payments {
			if p.PaymentStatus != domain.PaymentCompleted {
				continue
			}
			if err := e.paymentRepo.UpdateStatus(txCtx, p.ID, domain.PaymentRefunded); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}
	if skipped {
		return nil
	}

	e.publisher.PublishBookingEvent(ctx, events.BookingEvent{
		Type:       events.TypeBookingExpired,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		SlotID:     booking.SlotID,
		Status:     string(domain.StatusCancelled),
		OccurredAt: now,
	})

	return nil
}

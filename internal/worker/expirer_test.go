package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/infra/events"
	bookingRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	expired   []*domain.Booking
	cancelled []string
	cancelErr error
}

func (f *fakeBookingRepo) GetExpiredPending(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.expired, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id string, _ time.Time) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeSlotRepo struct {
	released []string
}

func (f *fakeSlotRepo) UpdateStatusIf(_ context.Context, id string, _, _ domain.SlotStatus) error {
	f.released = append(f.released, id)
	return nil
}

type fakePaymentRepo struct {
	payments map[string][]*domain.Payment
	refunded []string
}

func (f *fakePaymentRepo) GetByBookingID(_ context.Context, bookingID string) ([]*domain.Payment, error) {
	return f.payments[bookingID], nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, id string, status domain.PaymentStatus) error {
	if status == domain.PaymentRefunded {
		f.refunded = append(f.refunded, id)
	}
	return nil
}

type fakeMembershipRepo struct {
	expiredCount int64
}

func (f *fakeMembershipRepo) ExpireOutdated(_ context.Context) (int64, error) {
	return f.expiredCount, nil
}

type fakePublisher struct {
	events []events.BookingEvent
}

func (f *fakePublisher) PublishBookingEvent(_ context.Context, event events.BookingEvent) {
	f.events = append(f.events, event)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newExpirerFixture(bookings *fakeBookingRepo, payments *fakePaymentRepo) (*Expirer, *fakeSlotRepo, *fakePublisher) {
	slots := &fakeSlotRepo{}
	publisher := &fakePublisher{}

	e := NewExpirer(
		bookings,
		slots,
		payments,
		&fakeMembershipRepo{expiredCount: 2},
		publisher,
		fakeTxManager{},
		30*time.Minute,
		time.Minute,
		nopLogger{},
	)
	return e, slots, publisher
}

func TestSweep_ExpiresPendingBooking(t *testing.T) {
	booking := &domain.Booking{
		ID:     "booking-1",
		UserID: "user-1",
		SlotID: "slot-1",
		Status: domain.StatusPending,
	}
	bookings := &fakeBookingRepo{expired: []*domain.Booking{booking}}
	payments := &fakePaymentRepo{payments: map[string][]*domain.Payment{
		"booking-1": {
			{ID: "payment-1", PaymentStatus: domain.PaymentCompleted},
			{ID: "payment-2", PaymentStatus: domain.PaymentPending},
		},
	}}

	e, slots, publisher := newExpirerFixture(bookings, payments)
	e.sweep(context.Background())

	assert.Equal(t, []string{"booking-1"}, bookings.cancelled)
	assert.Equal(t, []string{"slot-1"}, slots.released)

	// Возвращается только завершенный платеж
	assert.Equal(t, []string{"payment-1"}, payments.refunded)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.TypeBookingExpired, publisher.events[0].Type)
	assert.Equal(t, "booking-1", publisher.events[0].BookingID)
}

func TestSweep_SkipsConcurrentlyChangedBooking(t *testing.T) {
	booking := &domain.Booking{
		ID:     "booking-1",
		UserID: "user-1",
		SlotID: "slot-1",
		Status: domain.StatusPending,
	}
	bookings := &fakeBookingRepo{
		expired:   []*domain.Booking{booking},
		cancelErr: bookingRepo.ErrStatusConflict,
	}
	payments := &fakePaymentRepo{payments: map[string][]*domain.Payment{}}

	e, slots, publisher := newExpirerFixture(bookings, payments)
	e.sweep(context.Background())

	// Бронирование уже активировано конкурентно: ничего не трогаем
	assert.Empty(t, bookings.cancelled)
	assert.Empty(t, slots.released)
	assert.Empty(t, publisher.events)
}

func TestSweep_NoExpiredBookings(t *testing.T) {
	bookings := &fakeBookingRepo{}
	payments := &fakePaymentRepo{payments: map[string][]*domain.Payment{}}

	e, slots, publisher := newExpirerFixture(bookings, payments)
	e.sweep(context.Background())

	assert.Empty(t, slots.released)
	assert.Empty(t, publisher.events)
}

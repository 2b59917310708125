package exit_scan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/infra/events"
	bookingRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/slot"
	tokenRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/token"
)

type fakeBookingRepo struct {
	booking *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) MarkExited(_ context.Context, _ string, actualEnd time.Time, totalHours int) error {
	if f.booking.Status != domain.StatusActive {
		return bookingRepo.ErrStatusConflict
	}
	f.booking.Status = domain.StatusCompleted
	f.booking.ActualEnd = &actualEnd
	f.booking.TotalHours = totalHours
	return nil
}

type fakeSlotRepo struct {
	slot          *domain.ParkingSlot
	statusUpdates []domain.SlotStatus
	updateErr     error
}

func (f *fakeSlotRepo) GetByID(_ context.Context, _ string) (*domain.ParkingSlot, error) {
	return f.slot, nil
}

func (f *fakeSlotRepo) UpdateStatusIf(_ context.Context, _ string, _, to domain.SlotStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.statusUpdates = append(f.statusUpdates, to)
	return nil
}

type fakeTokenRepo struct {
	token *domain.Token
}

func (f *fakeTokenRepo) GetByCode(_ context.Context, bookingID, code string) (*domain.Token, error) {
	if f.token == nil || f.token.BookingID != bookingID || f.token.TokenCode != code {
		return nil, tokenRepo.ErrTokenNotFound
	}
	return f.token, nil
}

func (f *fakeTokenRepo) MarkUsed(_ context.Context, _ string, usedAt time.Time) error {
	if f.token.IsUsed {
		return tokenRepo.ErrAlreadyUsed
	}
	f.token.IsUsed = true
	f.token.UsedAt = &usedAt
	return nil
}

type fakePaymentRepo struct {
	created *domain.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	payment.ID = "payment-2"
	f.created = payment
	return payment, nil
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

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc        *UseCase
	bookings  *fakeBookingRepo
	slots     *fakeSlotRepo
	tokens    *fakeTokenRepo
	payments  *fakePaymentRepo
	publisher *fakePublisher
	now       time.Time
}

func newFixture() *fixture {
	now := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	actualStart := now.Add(-4 * time.Hour)

	f := &fixture{
		bookings: &fakeBookingRepo{
			booking: &domain.Booking{
				ID:          "booking-1",
				UserID:      "user-1",
				SlotID:      "slot-1",
				ActualStart: &actualStart,
				TotalHours:  4,
				Status:      domain.StatusActive,
			},
		},
		slots: &fakeSlotRepo{
			slot: &domain.ParkingSlot{ID: "slot-1", HourlyRate: 50, Status: domain.SlotOccupied},
		},
		tokens: &fakeTokenRepo{
			token: &domain.Token{
				ID:        "token-1",
				BookingID: "booking-1",
				TokenCode: "PKW-1760529600000-AB12CD34E",
			},
		},
		payments:  &fakePaymentRepo{},
		publisher: &fakePublisher{},
		now:       now,
	}

	f.uc = NewUseCase(f.bookings, f.slots, f.tokens, f.payments, f.publisher, fakeTxManager{}, nopLogger{})
	f.uc.timeProvider = fixedTimeProvider{now: now}
	return f
}

func exitRequest() *Request {
	return &Request{
		BookingID: "booking-1",
		TokenCode: "PKW-1760529600000-AB12CD34E",
	}
}

func TestExitScan_OnTime(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), exitRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, 4, resp.ActualHours)
	assert.Equal(t, 200.0, resp.SettlementAmount)
	assert.Equal(t, 0, resp.ExtraHours)
	assert.Equal(t, 0.0, resp.ExtraAmount)

	// Токен погашен, слот освобожден
	assert.True(t, f.tokens.token.IsUsed)
	assert.Equal(t, []domain.SlotStatus{domain.SlotAvailable}, f.slots.statusUpdates)

	// Расчетный платеж создается на каждом выезде: фактические часы по тарифу
	require.NotNil(t, f.payments.created)
	assert.Equal(t, domain.PaymentPending, f.payments.created.PaymentStatus)
	assert.Equal(t, 200.0, f.payments.created.Amount)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.TypeBookingCompleted, f.publisher.events[0].Type)
}

func TestExitScan_Overstay(t *testing.T) {
	f := newFixture()
	// Фактически простояли 6.5 часов при оплаченных 4
	actualStart := f.now.Add(-6*time.Hour - 30*time.Minute)
	f.bookings.booking.ActualStart = &actualStart

	resp, err := f.uc.Execute(context.Background(), exitRequest())
	require.NoError(t, err)

	assert.Equal(t, 7, resp.ActualHours)
	assert.Equal(t, 350.0, resp.SettlementAmount)
	assert.Equal(t, 3, resp.ExtraHours)
	assert.Equal(t, 150.0, resp.ExtraAmount)

	// Платеж покрывает все фактические часы, а не только перепробег
	require.NotNil(t, f.payments.created)
	assert.Equal(t, domain.PaymentPending, f.payments.created.PaymentStatus)
	assert.Equal(t, 350.0, f.payments.created.Amount)

	// Фактические часы записаны в бронирование
	assert.Equal(t, 7, f.bookings.booking.TotalHours)
}

func TestExitScan_SlotConflict(t *testing.T) {
	f := newFixture()
	f.slots.updateErr = slotRepo.ErrStatusConflict

	_, err := f.uc.Execute(context.Background(), exitRequest())
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestExitScan_TokenAlreadyUsed(t *testing.T) {
	f := newFixture()
	f.tokens.token.IsUsed = true

	_, err := f.uc.Execute(context.Background(), exitRequest())
	assert.ErrorIs(t, err, ErrTokenAlreadyUsed)

	// Бронирование не тронуто
	assert.Equal(t, domain.StatusActive, f.bookings.booking.Status)
}

func TestExitScan_InvalidState(t *testing.T) {
	f := newFixture()
	f.bookings.booking.Status = domain.StatusPending

	_, err := f.uc.Execute(context.Background(), exitRequest())
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestExitScan_BookingNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "missing", TokenCode: "x"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

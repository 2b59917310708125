package entry_scan

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
	"github.com/parkwise/PW-BookingService/pkg/qrtoken"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	entered *time.Time
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) MarkEntered(_ context.Context, _ string, actualStart time.Time) error {
	if f.booking.Status != domain.StatusPending {
		return bookingRepo.ErrStatusConflict
	}
	f.booking.Status = domain.StatusActive
	f.booking.ActualStart = &actualStart
	f.entered = &actualStart
	return nil
}

type fakeSlotRepo struct {
	statusUpdates []domain.SlotStatus
	location      *domain.SlotLocation
	updateErr     error
}

func (f *fakeSlotRepo) UpdateStatusIf(_ context.Context, _ string, _, to domain.SlotStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.statusUpdates = append(f.statusUpdates, to)
	return nil
}

func (f *fakeSlotRepo) GetLocation(_ context.Context, _ string) (*domain.SlotLocation, error) {
	return f.location, nil
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

type fixture struct {
	uc        *UseCase
	bookings  *fakeBookingRepo
	slots     *fakeSlotRepo
	tokens    *fakeTokenRepo
	publisher *fakePublisher
}

func newFixture() *fixture {
	floor := 2

	f := &fixture{
		bookings: &fakeBookingRepo{
			booking: &domain.Booking{
				ID:     "booking-1",
				UserID: "user-1",
				SlotID: "slot-1",
				Status: domain.StatusPending,
			},
		},
		slots: &fakeSlotRepo{
			location: &domain.SlotLocation{
				SlotID:      "slot-1",
				SlotNumber:  "A-12",
				ZoneName:    "North Wing",
				FloorNumber: &floor,
				CentreID:    "centre-1",
				CentreName:  "City Mall Parking",
			},
		},
		tokens: &fakeTokenRepo{
			token: &domain.Token{
				ID:        "token-1",
				BookingID: "booking-1",
				TokenCode: "PKW-1760529600000-AB12CD34E",
			},
		},
		publisher: &fakePublisher{},
	}

	f.uc = NewUseCase(f.bookings, f.slots, f.tokens, f.publisher, fakeTxManager{}, nopLogger{})
	return f
}

func TestEntryScan_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID: "booking-1",
		TokenCode: "PKW-1760529600000-AB12CD34E",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Equal(t, "A-12", resp.SlotNumber)
	assert.Equal(t, "North Wing", resp.ZoneName)
	assert.Equal(t, "City Mall Parking", resp.CentreName)

	// Бронирование активировано, слот занят
	assert.Equal(t, domain.StatusActive, f.bookings.booking.Status)
	require.NotNil(t, f.bookings.booking.ActualStart)
	assert.Equal(t, []domain.SlotStatus{domain.SlotOccupied}, f.slots.statusUpdates)

	// Токен на въезде не гасится
	assert.False(t, f.tokens.token.IsUsed)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.TypeBookingActivated, f.publisher.events[0].Type)
}

func TestEntryScan_FromQRData(t *testing.T) {
	f := newFixture()

	qrData, err := qrtoken.Encode(qrtoken.Payload{
		BookingID:  "booking-1",
		TokenCode:  "PKW-1760529600000-AB12CD34E",
		SlotNumber: "A-12",
		Vehicle:    "KA01AB1234",
	})
	require.NoError(t, err)

	resp, err := f.uc.Execute(context.Background(), &Request{QRData: qrData})
	require.NoError(t, err)
	assert.Equal(t, "booking-1", resp.BookingID)
}

func TestEntryScan_BookingNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: "missing",
		TokenCode: "PKW-1760529600000-AB12CD34E",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestEntryScan_WrongToken(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: "booking-1",
		TokenCode: "PKW-0-WRONG",
	})
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestEntryScan_TokenAlreadyUsed(t *testing.T) {
	f := newFixture()
	f.tokens.token.IsUsed = true

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: "booking-1",
		TokenCode: "PKW-1760529600000-AB12CD34E",
	})
	assert.ErrorIs(t, err, ErrTokenAlreadyUsed)
}

func TestEntryScan_InvalidState(t *testing.T) {
	f := newFixture()

	for _, status := range []domain.BookingStatus{domain.StatusActive, domain.StatusCompleted, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			f.bookings.booking.Status = status

			_, err := f.uc.Execute(context.Background(), &Request{
				BookingID: "booking-1",
				TokenCode: "PKW-1760529600000-AB12CD34E",
			})
			assert.ErrorIs(t, err, ErrInvalidState)
		})
	}
}

func TestEntryScan_SlotConflict(t *testing.T) {
	f := newFixture()
	f.slots.updateErr = slotRepo.ErrStatusConflict

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: "booking-1",
		TokenCode: "PKW-1760529600000-AB12CD34E",
	})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestEntryScan_MissingCredentials(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: "booking-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{QRData: "not-json"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

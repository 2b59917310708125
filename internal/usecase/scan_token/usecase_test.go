package scan_token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/PW-BookingService/internal/domain"
	tokenRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/token"
)

type fakeTokenRepo struct {
	token *domain.Token
}

func (f *fakeTokenRepo) GetByCode(_ context.Context, bookingID, code string) (*domain.Token, error) {
	if f.token == nil || f.token.BookingID != bookingID || f.token.TokenCode != code {
		return nil, tokenRepo.ErrTokenNotFound
	}
	return f.token, nil
}

type fakeBookingRepo struct {
	booking *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*domain.Booking, error) {
	return f.booking, nil
}

type fakeSlotRepo struct{}

func (fakeSlotRepo) GetLocation(_ context.Context, _ string) (*domain.SlotLocation, error) {
	return &domain.SlotLocation{
		SlotNumber: "A-12",
		ZoneName:   "North Wing",
		CentreName: "City Mall Parking",
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	tokens   *fakeTokenRepo
	bookings *fakeBookingRepo
}

func newFixture(status domain.BookingStatus) *fixture {
	f := &fixture{
		tokens: &fakeTokenRepo{
			token: &domain.Token{
				ID:        "token-1",
				BookingID: "booking-1",
				TokenCode: "PKW-1760529600000-AB12CD34E",
			},
		},
		bookings: &fakeBookingRepo{
			booking: &domain.Booking{ID: "booking-1", SlotID: "slot-1", Status: status},
		},
	}

	f.uc = NewUseCase(f.tokens, f.bookings, fakeSlotRepo{}, nopLogger{})
	return f
}

func scanRequest() *Request {
	return &Request{
		BookingID: "booking-1",
		TokenCode: "PKW-1760529600000-AB12CD34E",
	}
}

func TestScanToken_Success(t *testing.T) {
	f := newFixture(domain.StatusActive)

	resp, err := f.uc.Execute(context.Background(), scanRequest())
	require.NoError(t, err)

	assert.Equal(t, "booking-1", resp.BookingID)
	assert.Equal(t, string(domain.StatusActive), resp.BookingStatus)
	assert.Equal(t, "A-12", resp.SlotNumber)
	assert.False(t, resp.IsUsed)
	assert.Nil(t, resp.UsedAt)
}

func TestScanToken_DoesNotConsumeToken(t *testing.T) {
	// Проверка валидатором не гасит токен: бронирование в статусе pending
	// после сканирования по-прежнему можно активировать на въезде
	f := newFixture(domain.StatusPending)

	_, err := f.uc.Execute(context.Background(), scanRequest())
	require.NoError(t, err)

	assert.False(t, f.tokens.token.IsUsed)
	assert.Equal(t, domain.StatusPending, f.bookings.booking.Status)

	// Повторное сканирование тоже проходит
	resp, err := f.uc.Execute(context.Background(), scanRequest())
	require.NoError(t, err)
	assert.False(t, resp.IsUsed)
}

func TestScanToken_UsedTokenOnCompletedBooking(t *testing.T) {
	f := newFixture(domain.StatusCompleted)
	usedAt := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	f.tokens.token.IsUsed = true
	f.tokens.token.UsedAt = &usedAt

	_, err := f.uc.Execute(context.Background(), scanRequest())
	assert.ErrorIs(t, err, ErrTokenAlreadyUsed)
}

func TestScanToken_UsedTokenOnActiveBooking(t *testing.T) {
	// Пока бронирование не завершено, погашенный токен отдается как есть
	f := newFixture(domain.StatusActive)
	usedAt := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	f.tokens.token.IsUsed = true
	f.tokens.token.UsedAt = &usedAt

	resp, err := f.uc.Execute(context.Background(), scanRequest())
	require.NoError(t, err)

	assert.True(t, resp.IsUsed)
	require.NotNil(t, resp.UsedAt)
	assert.Equal(t, usedAt, *resp.UsedAt)
}

func TestScanToken_NotFound(t *testing.T) {
	f := newFixture(domain.StatusActive)

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: "booking-1",
		TokenCode: "PKW-0-UNKNOWN",
	})
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestScanToken_InvalidInput(t *testing.T) {
	f := newFixture(domain.StatusActive)

	_, err := f.uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/infra/events"
	membershipRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/membership"
	slotRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/slot"
	vehicleRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/vehicle"
)

type fakeBookingRepo struct {
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = "booking-1"
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

type fakeSlotRepo struct {
	slot          *domain.ParkingSlot
	statusUpdates []domain.SlotStatus
	conflict      bool
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id string) (*domain.ParkingSlot, error) {
	if f.slot == nil || f.slot.ID != id {
		return nil, slotRepo.ErrSlotNotFound
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) UpdateStatusIf(_ context.Context, _ string, _, to domain.SlotStatus) error {
	if f.conflict {
		return slotRepo.ErrStatusConflict
	}
	f.statusUpdates = append(f.statusUpdates, to)
	f.slot.Status = to
	return nil
}

type fakeVehicleRepo struct {
	vehicle *domain.Vehicle
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, id string) (*domain.Vehicle, error) {
	if f.vehicle == nil || f.vehicle.ID != id {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return f.vehicle, nil
}

type fakeMembershipRepo struct {
	membership *domain.UserMembership
	plan       *domain.MembershipPlan
}

func (f *fakeMembershipRepo) GetActiveByUserID(_ context.Context, _ string) (*domain.UserMembership, error) {
	if f.membership == nil {
		return nil, membershipRepo.ErrMembershipNotFound
	}
	return f.membership, nil
}

func (f *fakeMembershipRepo) GetPlanByID(_ context.Context, _ string) (*domain.MembershipPlan, error) {
	return f.plan, nil
}

type fakeLoyaltyRepo struct {
	balance  int
	earned   int
	redeemed int
}

func (f *fakeLoyaltyRepo) GetByUserID(_ context.Context, userID string) (*domain.LoyaltyPoints, error) {
	return &domain.LoyaltyPoints{UserID: userID, Points: f.balance}, nil
}

func (f *fakeLoyaltyRepo) Adjust(_ context.Context, _ string, earned, redeemed int) error {
	f.earned += earned
	f.redeemed += redeemed
	return nil
}

type fakePaymentRepo struct {
	created *domain.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	payment.ID = "payment-1"
	f.created = payment
	return payment, nil
}

type fakeTokenRepo struct {
	created *domain.Token
}

func (f *fakeTokenRepo) Create(_ context.Context, token *domain.Token) (*domain.Token, error) {
	token.ID = "token-1"
	f.created = token
	return token, nil
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
	uc         *UseCase
	bookings   *fakeBookingRepo
	slots      *fakeSlotRepo
	vehicles   *fakeVehicleRepo
	membership *fakeMembershipRepo
	loyalty    *fakeLoyaltyRepo
	payments   *fakePaymentRepo
	tokens     *fakeTokenRepo
	publisher  *fakePublisher
	now        time.Time
}

func newFixture() *fixture {
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

	f := &fixture{
		bookings: &fakeBookingRepo{},
		slots: &fakeSlotRepo{
			slot: &domain.ParkingSlot{
				ID:          "slot-1",
				SlotNumber:  "A-12",
				VehicleType: domain.VehicleCar,
				HourlyRate:  50,
				Status:      domain.SlotAvailable,
			},
		},
		vehicles: &fakeVehicleRepo{
			vehicle: &domain.Vehicle{
				ID:            "vehicle-1",
				UserID:        "user-1",
				VehicleNumber: "KA01AB1234",
				VehicleType:   domain.VehicleCar,
			},
		},
		membership: &fakeMembershipRepo{},
		loyalty:    &fakeLoyaltyRepo{},
		payments:   &fakePaymentRepo{},
		tokens:     &fakeTokenRepo{},
		publisher:  &fakePublisher{},
		now:        now,
	}

	f.uc = NewUseCase(
		f.bookings, f.slots, f.vehicles, f.membership,
		f.loyalty, f.payments, f.tokens, f.publisher,
		fakeTxManager{}, nopLogger{},
	)
	f.uc.timeProvider = fixedTimeProvider{now: now}

	return f
}

func validRequest() *Request {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	return &Request{
		UserID:        "user-1",
		SlotID:        "slot-1",
		VehicleID:     "vehicle-1",
		BookingStart:  start,
		BookingEnd:    start.Add(4 * time.Hour),
		PaymentMethod: domain.MethodCard,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "booking-1", resp.BookingID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 4, resp.TotalHours)
	assert.Equal(t, 200.0, resp.BaseAmount)
	assert.Equal(t, 200.0, resp.TotalAmount)
	assert.Equal(t, 20, resp.PointsEarned)

	// Слот зарезервирован
	assert.Equal(t, []domain.SlotStatus{domain.SlotReserved}, f.slots.statusUpdates)

	// Платеж зафиксирован сразу
	require.NotNil(t, f.payments.created)
	assert.Equal(t, domain.PaymentCompleted, f.payments.created.PaymentStatus)
	assert.Equal(t, 200.0, f.payments.created.Amount)
	require.NotNil(t, f.payments.created.TransactionID)

	// Токен выпущен непогашенным
	require.NotNil(t, f.tokens.created)
	assert.False(t, f.tokens.created.IsUsed)
	assert.Contains(t, f.tokens.created.TokenCode, "PKW-")
	assert.Equal(t, resp.TokenCode, f.tokens.created.TokenCode)

	// Баллы начислены от базовой стоимости
	assert.Equal(t, 20, f.loyalty.earned)
	assert.Equal(t, 0, f.loyalty.redeemed)

	// Событие опубликовано
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.TypeBookingCreated, f.publisher.events[0].Type)
}

func TestCreateBooking_MembershipDiscount(t *testing.T) {
	f := newFixture()
	f.membership.membership = &domain.UserMembership{
		PlanID:  "plan-1",
		Status:  domain.MembershipActive,
		EndDate: f.now.AddDate(0, 1, 0),
	}
	f.membership.plan = &domain.MembershipPlan{ID: "plan-1", DiscountPercentage: 15}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 30.0, resp.MembershipDiscount)
	assert.Equal(t, 170.0, resp.TotalAmount)
	// Баллы считаются от базы, скидка на начисление не влияет
	assert.Equal(t, 20, resp.PointsEarned)
}

func TestCreateBooking_PointsRedemption(t *testing.T) {
	f := newFixture()
	f.membership.membership = &domain.UserMembership{
		PlanID:  "plan-1",
		Status:  domain.MembershipActive,
		EndDate: f.now.AddDate(0, 1, 0),
	}
	f.membership.plan = &domain.MembershipPlan{ID: "plan-1", DiscountPercentage: 15}
	f.loyalty.balance = 100

	req := validRequest()
	req.UsePoints = 50

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 170.0, resp.TotalAmount)

	resp, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 50.0, resp.PointsDiscount)
	assert.Equal(t, 120.0, resp.TotalAmount)
	assert.Equal(t, 50, resp.PointsRedeemed)
}

func TestCreateBooking_PointsCappedByBalance(t *testing.T) {
	f := newFixture()
	f.loyalty.balance = 30

	req := validRequest()
	req.UsePoints = 100

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 30.0, resp.PointsDiscount)
	assert.Equal(t, 170.0, resp.TotalAmount)
	assert.Equal(t, 30, f.loyalty.redeemed)
}

func TestCreateBooking_SlotTakenConcurrently(t *testing.T) {
	f := newFixture()
	f.slots.conflict = true

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, f.publisher.events)
}

func TestCreateBooking_SlotNotAvailable(t *testing.T) {
	f := newFixture()
	f.slots.slot.Status = domain.SlotOccupied

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateBooking_VehicleTypeMismatch(t *testing.T) {
	f := newFixture()
	f.vehicles.vehicle.VehicleType = domain.VehicleSUV

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVehicleTypeMismatch)
}

func TestCreateBooking_VehicleNotOwned(t *testing.T) {
	f := newFixture()
	f.vehicles.vehicle.UserID = "someone-else"

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVehicleNotOwned)
}

func TestCreateBooking_Validation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing user", func(r *Request) { r.UserID = "" }},
		{"missing slot", func(r *Request) { r.SlotID = "" }},
		{"missing vehicle", func(r *Request) { r.VehicleID = "" }},
		{"end before start", func(r *Request) { r.BookingEnd = r.BookingStart.Add(-time.Hour) }},
		{"window in the past", func(r *Request) {
			r.BookingStart = r.BookingStart.AddDate(0, 0, -2)
			r.BookingEnd = r.BookingEnd.AddDate(0, 0, -2)
		}},
		{"negative points", func(r *Request) { r.UsePoints = -1 }},
		{"bad payment method", func(r *Request) { r.PaymentMethod = "barter" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

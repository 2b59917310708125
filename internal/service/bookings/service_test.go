package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/infra/events"
	bookingRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/booking"
	rolesRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/roles"
	"github.com/parkwise/PW-BookingService/internal/service/bookings/models"
	"github.com/parkwise/PW-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByCentreWithFilter(_ context.Context, filter domain.CentreBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if !filter.IncludeInactive && filter.Status == nil && b.IsTerminal() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id string, _ time.Time) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.IsTerminal() {
		return bookingRepo.ErrStatusConflict
	}
	b.Status = domain.StatusCancelled
	return nil
}

type fakeSlotRepo struct {
	location      *domain.SlotLocation
	statusUpdates []domain.SlotStatus
	lastFrom      domain.SlotStatus
}

func (f *fakeSlotRepo) UpdateStatusIf(_ context.Context, _ string, from, to domain.SlotStatus) error {
	f.lastFrom = from
	f.statusUpdates = append(f.statusUpdates, to)
	return nil
}

func (f *fakeSlotRepo) GetLocation(_ context.Context, _ string) (*domain.SlotLocation, error) {
	return f.location, nil
}

type fakePaymentRepo struct {
	payments map[string]*domain.Payment
}

func (f *fakePaymentRepo) GetByBookingID(_ context.Context, bookingID string) ([]*domain.Payment, error) {
	result := make([]*domain.Payment, 0)
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, id string, status domain.PaymentStatus) error {
	f.payments[id].PaymentStatus = status
	return nil
}

type fakeRolesRepo struct {
	managerCentres   map[string]string
	attendantCentres map[string]string
}

func (f *fakeRolesRepo) GetManagerCentre(_ context.Context, userID string) (string, error) {
	c, ok := f.managerCentres[userID]
	if !ok {
		return "", rolesRepo.ErrAssignmentNotFound
	}
	return c, nil
}

func (f *fakeRolesRepo) GetAttendantCentre(_ context.Context, userID string) (string, error) {
	c, ok := f.attendantCentres[userID]
	if !ok {
		return "", rolesRepo.ErrAssignmentNotFound
	}
	return c, nil
}

type fakePublisher struct {
	events []events.BookingEvent
}

func (f *fakePublisher) PublishBookingEvent(_ context.Context, event events.BookingEvent) {
	f.events = append(f.events, event)
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc       *Service
	bookings  *fakeBookingRepo
	slots     *fakeSlotRepo
	payments  *fakePaymentRepo
	roles     *fakeRolesRepo
	publisher *fakePublisher
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{
			bookings: map[string]*domain.Booking{
				"booking-1": {
					ID:     "booking-1",
					UserID: "user-1",
					SlotID: "slot-1",
					Status: domain.StatusPending,
				},
			},
		},
		slots: &fakeSlotRepo{
			location: &domain.SlotLocation{SlotID: "slot-1", CentreID: "centre-1", CentreName: "City Mall Parking"},
		},
		payments: &fakePaymentRepo{
			payments: map[string]*domain.Payment{
				"payment-1": {
					ID:            "payment-1",
					BookingID:     "booking-1",
					Amount:        200,
					PaymentStatus: domain.PaymentCompleted,
				},
			},
		},
		roles: &fakeRolesRepo{
			managerCentres:   map[string]string{"manager-1": "centre-1"},
			attendantCentres: map[string]string{"attendant-1": "centre-1"},
		},
		publisher: &fakePublisher{},
	}

	f.svc = NewService(f.bookings, f.slots, f.payments, f.roles, f.publisher, fakeTxManager{}, nopLogger{})
	return f
}

func TestGetByID_Owner(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.GetByID(context.Background(), "booking-1", domain.Identity{UserID: "user-1", Role: domain.RoleUser})
	require.NoError(t, err)

	assert.Equal(t, "booking-1", resp.ID)
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, 200.0, resp.Payments[0].Amount)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetByID(context.Background(), "booking-1", domain.Identity{UserID: "user-2", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_CentreStaffAllowed(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetByID(context.Background(), "booking-1", domain.Identity{UserID: "manager-1", Role: domain.RoleManager})
	assert.NoError(t, err)

	_, err = f.svc.GetByID(context.Background(), "booking-1", domain.Identity{UserID: "attendant-1", Role: domain.RoleAttendant})
	assert.NoError(t, err)
}

func TestGetByID_ForeignManagerDenied(t *testing.T) {
	f := newFixture()
	f.roles.managerCentres["manager-2"] = "centre-other"

	_, err := f.svc.GetByID(context.Background(), "booking-1", domain.Identity{UserID: "manager-2", Role: domain.RoleManager})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_OwnHistory(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.GetUserBookings(context.Background(),
		&models.GetUserBookingsRequest{UserID: "user-1"},
		domain.Identity{UserID: "user-1", Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestGetUserBookings_ForeignHistoryDenied(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetUserBookings(context.Background(),
		&models.GetUserBookingsRequest{UserID: "user-1"},
		domain.Identity{UserID: "user-2", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetUserBookings(context.Background(),
		&models.GetUserBookingsRequest{UserID: "user-1", Status: ptr.Ptr("parked")},
		domain.Identity{UserID: "user-1", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCentreBookings_ManagerAllowed(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.GetCentreBookings(context.Background(),
		&models.GetCentreBookingsRequest{CentreID: "centre-1"},
		domain.Identity{UserID: "manager-1", Role: domain.RoleManager})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestGetCentreBookings_RegularUserDenied(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetCentreBookings(context.Background(),
		&models.GetCentreBookingsRequest{CentreID: "centre-1"},
		domain.Identity{UserID: "user-1", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_PendingBooking(t *testing.T) {
	f := newFixture()

	err := f.svc.Cancel(context.Background(), "booking-1", domain.Identity{UserID: "user-1", Role: domain.RoleUser})
	require.NoError(t, err)

	// Бронирование отменено, слот освобожден из reserved
	assert.Equal(t, domain.StatusCancelled, f.bookings.bookings["booking-1"].Status)
	assert.Equal(t, domain.SlotReserved, f.slots.lastFrom)
	assert.Equal(t, []domain.SlotStatus{domain.SlotAvailable}, f.slots.statusUpdates)

	// Платеж возвращен
	assert.Equal(t, domain.PaymentRefunded, f.payments.payments["payment-1"].PaymentStatus)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.TypeBookingCancelled, f.publisher.events[0].Type)
}

func TestCancel_ActiveBookingReleasesOccupiedSlot(t *testing.T) {
	f := newFixture()
	f.bookings.bookings["booking-1"].Status = domain.StatusActive

	err := f.svc.Cancel(context.Background(), "booking-1", domain.Identity{UserID: "user-1", Role: domain.RoleUser})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotOccupied, f.slots.lastFrom)
}

func TestCancel_TerminalBooking(t *testing.T) {
	f := newFixture()
	f.bookings.bookings["booking-1"].Status = domain.StatusCompleted

	err := f.svc.Cancel(context.Background(), "booking-1", domain.Identity{UserID: "user-1", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	f := newFixture()

	err := f.svc.Cancel(context.Background(), "missing", domain.Identity{UserID: "user-1", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

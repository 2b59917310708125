package get_available_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/PW-BookingService/internal/domain"
	centreRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/centre"
	"github.com/parkwise/PW-BookingService/pkg/ptr"
)

type fakeCentreRepo struct {
	centre *domain.ParkingCentre
}

func (f *fakeCentreRepo) GetByID(_ context.Context, id string) (*domain.ParkingCentre, error) {
	if f.centre == nil || f.centre.ID != id {
		return nil, centreRepo.ErrCentreNotFound
	}
	return f.centre, nil
}

type fakeSlotRepo struct {
	slots      []*domain.AvailableSlot
	lastFilter *domain.VehicleType
}

func (f *fakeSlotRepo) ListAvailableByCentre(_ context.Context, _ string, vehicleType *domain.VehicleType) ([]*domain.AvailableSlot, error) {
	f.lastFilter = vehicleType

	if vehicleType == nil {
		return f.slots, nil
	}

	filtered := make([]*domain.AvailableSlot, 0)
	for _, s := range f.slots {
		if s.Slot.VehicleType == *vehicleType {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase() (*UseCase, *fakeSlotRepo) {
	centres := &fakeCentreRepo{
		centre: &domain.ParkingCentre{ID: "centre-1", Name: "City Mall Parking"},
	}

	slots := &fakeSlotRepo{
		slots: []*domain.AvailableSlot{
			{
				Slot:     domain.ParkingSlot{ID: "slot-1", SlotNumber: "A-1", VehicleType: domain.VehicleCar, HourlyRate: 50},
				ZoneName: "North Wing",
			},
			{
				Slot:     domain.ParkingSlot{ID: "slot-2", SlotNumber: "B-1", VehicleType: domain.VehicleBike, HourlyRate: 20},
				ZoneName: "South Wing",
			},
		},
	}

	return NewUseCase(centres, slots, nopLogger{}), slots
}

func TestGetAvailableSlots_All(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{CentreID: "centre-1"})
	require.NoError(t, err)

	assert.Equal(t, "City Mall Parking", resp.CentreName)
	assert.Len(t, resp.Slots, 2)
	assert.Equal(t, "A-1", resp.Slots[0].SlotNumber)
	assert.Equal(t, 50.0, resp.Slots[0].HourlyRate)
}

func TestGetAvailableSlots_FilterByVehicleType(t *testing.T) {
	uc, slots := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		CentreID:    "centre-1",
		VehicleType: ptr.Ptr(domain.VehicleBike),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "B-1", resp.Slots[0].SlotNumber)
	require.NotNil(t, slots.lastFilter)
	assert.Equal(t, domain.VehicleBike, *slots.lastFilter)
}

func TestGetAvailableSlots_CentreNotFound(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Execute(context.Background(), &Request{CentreID: "missing"})
	assert.ErrorIs(t, err, ErrCentreNotFound)
}

func TestGetAvailableSlots_Validation(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Execute(context.Background(), &Request{CentreID: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := domain.VehicleType("spaceship")
	_, err = uc.Execute(context.Background(), &Request{CentreID: "centre-1", VehicleType: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Transitions(t *testing.T) {
	tests := []struct {
		status    BookingStatus
		canEnter  bool
		canExit   bool
		canCancel bool
		terminal  bool
	}{
		{StatusPending, true, false, true, false},
		{StatusActive, false, true, true, false},
		{StatusCompleted, false, false, false, true},
		{StatusCancelled, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.canEnter, b.CanEnter())
			assert.Equal(t, tt.canExit, b.CanExit())
			assert.Equal(t, tt.canCancel, b.CanBeCancelled())
			assert.Equal(t, tt.terminal, b.IsTerminal())
		})
	}
}

func TestParkingSlot_AcceptsVehicle(t *testing.T) {
	slot := &ParkingSlot{VehicleType: VehicleCar, Status: SlotAvailable}

	assert.True(t, slot.AcceptsVehicle(VehicleCar))
	assert.False(t, slot.AcceptsVehicle(VehicleSUV))
	assert.True(t, slot.IsAvailable())

	slot.Status = SlotOccupied
	assert.False(t, slot.IsAvailable())
}

func TestUserMembership_IsActiveAt(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	active := &UserMembership{Status: MembershipActive, EndDate: now.AddDate(0, 1, 0)}
	assert.True(t, active.IsActiveAt(now))

	expired := &UserMembership{Status: MembershipActive, EndDate: now.AddDate(0, -1, 0)}
	assert.False(t, expired.IsActiveAt(now))

	cancelled := &UserMembership{Status: MembershipCancelled, EndDate: now.AddDate(0, 1, 0)}
	assert.False(t, cancelled.IsActiveAt(now))
}

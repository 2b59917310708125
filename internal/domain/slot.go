package domain

import "time"

// SlotStatus represents the occupancy state of a parking slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotReserved  SlotStatus = "reserved"
	SlotOccupied  SlotStatus = "occupied"
)

// VehicleType represents the vehicle class a slot accepts
type VehicleType string

const (
	VehicleBike  VehicleType = "bike"
	VehicleCar   VehicleType = "car"
	VehicleSUV   VehicleType = "suv"
	VehicleTruck VehicleType = "truck"
)

// ParkingSlot represents an individually bookable parking space
type ParkingSlot struct {
	ID          string
	ZoneID      string
	SlotNumber  string
	VehicleType VehicleType
	HourlyRate  float64
	Status      SlotStatus
	CreatedAt   time.Time
}

// IsAvailable returns true if the slot can be reserved
func (s *ParkingSlot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// AcceptsVehicle returns true if a vehicle of the given type may book this slot
// Matching is exact, no fuzzy matching
func (s *ParkingSlot) AcceptsVehicle(vt VehicleType) bool {
	return s.VehicleType == vt
}

// AvailableSlot is a slot joined with its zone, as returned by availability listings
type AvailableSlot struct {
	Slot        ParkingSlot
	ZoneName    string
	FloorNumber *int
}

// SlotLocation describes where a slot physically sits, used for gate scan responses
type SlotLocation struct {
	SlotID      string
	SlotNumber  string
	ZoneName    string
	FloorNumber *int
	CentreID    string
	CentreName  string
}

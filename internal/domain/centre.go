package domain

import "time"

// ParkingCentre represents a physical parking facility
type ParkingCentre struct {
	ID             string
	Name           string
	Address        string
	City           string
	State          string
	Pincode        string
	Latitude       *float64
	Longitude      *float64
	TotalCapacity  int
	OperatingHours string
	CreatedAt      time.Time
}

// ParkingZone represents a sub-area of a centre (floor, wing, open lot)
// A zone belongs to exactly one centre
type ParkingZone struct {
	ID          string
	CentreID    string
	ZoneName    string
	ZoneType    string
	FloorNumber *int
	TotalSlots  int
	CreatedAt   time.Time
}

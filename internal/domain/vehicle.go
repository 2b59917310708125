package domain

import "time"

// Vehicle represents a user's registered vehicle
type Vehicle struct {
	ID            string
	UserID        string
	VehicleNumber string
	VehicleType   VehicleType
	VehicleModel  *string
	VehicleColor  *string
	CreatedAt     time.Time
}

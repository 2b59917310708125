package create_vehicle

// CreateVehicleRequest HTTP request model
type CreateVehicleRequest struct {
	VehicleNumber string  `json:"vehicleNumber"`
	VehicleType   string  `json:"vehicleType"` // car | bike | ev | handicap_accessible
	VehicleModel  *string `json:"vehicleModel,omitempty"`
	VehicleColor  *string `json:"vehicleColor,omitempty"`
}

package models

import (
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// CreateVehicleRequest запрос на регистрацию транспортного средства
type CreateVehicleRequest struct {
	UserID        string  `json:"userId"`
	VehicleNumber string  `json:"vehicleNumber"`
	VehicleType   string  `json:"vehicleType"`
	VehicleModel  *string `json:"vehicleModel,omitempty"`
	VehicleColor  *string `json:"vehicleColor,omitempty"`
}

// VehicleResponse ответ с данными транспортного средства
type VehicleResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	VehicleNumber string    `json:"vehicleNumber"`
	VehicleType   string    `json:"vehicleType"`
	VehicleModel  *string   `json:"vehicleModel,omitempty"`
	VehicleColor  *string   `json:"vehicleColor,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// VehicleListResponse ответ со списком транспортных средств
type VehicleListResponse struct {
	Vehicles []*VehicleResponse `json:"vehicles"`
	Total    int                `json:"total"`
}

// FromDomainVehicle конвертирует domain модель в response
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:            v.ID,
		UserID:        v.UserID,
		VehicleNumber: v.VehicleNumber,
		VehicleType:   string(v.VehicleType),
		VehicleModel:  v.VehicleModel,
		VehicleColor:  v.VehicleColor,
		CreatedAt:     v.CreatedAt,
	}
}

// FromDomainVehicleList конвертирует список domain моделей в response
func FromDomainVehicleList(vehicles []*domain.Vehicle) *VehicleListResponse {
	result := make([]*VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		result = append(result, FromDomainVehicle(v))
	}

	return &VehicleListResponse{
		Vehicles: result,
		Total:    len(result),
	}
}

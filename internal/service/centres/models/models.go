package models

import (
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// CentreResponse ответ с данными парковочного центра
type CentreResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Pincode        string    `json:"pincode"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	TotalCapacity  int       `json:"totalCapacity"`
	OperatingHours string    `json:"operatingHours"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CentreListResponse ответ со списком центров
type CentreListResponse struct {
	Centres []*CentreResponse `json:"centres"`
	Total   int               `json:"total"`
}

// FromDomainCentre конвертирует domain модель в response
func FromDomainCentre(c *domain.ParkingCentre) *CentreResponse {
	return &CentreResponse{
		ID:             c.ID,
		Name:           c.Name,
		Address:        c.Address,
		City:           c.City,
		State:          c.State,
		Pincode:        c.Pincode,
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		TotalCapacity:  c.TotalCapacity,
		OperatingHours: c.OperatingHours,
		CreatedAt:      c.CreatedAt,
	}
}

// FromDomainCentreList конвертирует список domain моделей в response
func FromDomainCentreList(centres []*domain.ParkingCentre) *CentreListResponse {
	result := make([]*CentreResponse, 0, len(centres))
	for _, c := range centres {
		result = append(result, FromDomainCentre(c))
	}

	return &CentreListResponse{
		Centres: result,
		Total:   len(result),
	}
}

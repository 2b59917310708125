package get_available_slots

import (
	getAvailableSlots "github.com/parkwise/PW-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель свободного слота
type SlotResponse struct {
	SlotID      string  `json:"slotId"`
	SlotNumber  string  `json:"slotNumber"`
	ZoneName    string  `json:"zoneName"`
	FloorNumber *int    `json:"floorNumber,omitempty"`
	VehicleType string  `json:"vehicleType"`
	HourlyRate  float64 `json:"hourlyRate"`
}

// AvailableSlotsResponse HTTP модель ответа со свободными слотами
type AvailableSlotsResponse struct {
	CentreID   string         `json:"centreId"`
	CentreName string         `json:"centreName"`
	Slots      []SlotResponse `json:"slots"`
	Total      int            `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			SlotID:      s.SlotID,
			SlotNumber:  s.SlotNumber,
			ZoneName:    s.ZoneName,
			FloorNumber: s.FloorNumber,
			VehicleType: s.VehicleType,
			HourlyRate:  s.HourlyRate,
		})
	}

	return &AvailableSlotsResponse{
		CentreID:   resp.CentreID,
		CentreName: resp.CentreName,
		Slots:      slots,
		Total:      len(slots),
	}
}

package get_available_slots

import "github.com/parkwise/PW-BookingService/internal/domain"

// Request модель запроса списка свободных слотов центра
type Request struct {
	CentreID    string              // ID парковочного центра
	VehicleType *domain.VehicleType // Фильтр по типу транспорта (опционально)
}

// SlotInfo информация о свободном слоте
type SlotInfo struct {
	SlotID      string  // ID слота
	SlotNumber  string  // Номер слота
	ZoneName    string  // Название зоны
	FloorNumber *int    // Этаж (если есть)
	VehicleType string  // Тип транспорта
	HourlyRate  float64 // Тариф за час
}

// Response модель ответа со свободными слотами
type Response struct {
	CentreID   string     // ID центра
	CentreName string     // Название центра
	Slots      []SlotInfo // Свободные слоты
}

package domain

// Pricing constants
const (
	// LoyaltyEarnRate доля базовой стоимости, начисляемая баллами (10%)
	LoyaltyEarnRate = 0.10

	// PointValue стоимость одного балла в валюте (1 балл = 1 рубль/рупия)
	PointValue = 1.0

	// MinBillableHours минимальная тарифицируемая длительность
	MinBillableHours = 1
)

// Business validation constants
const (
	MaxVehicleNumberLength = 20
	MaxTicketSubjectLength = 200
	MaxTicketBodyLength    = 2000
)

// VehicleTypes список поддерживаемых типов транспорта
var VehicleTypes = []VehicleType{
	VehicleBike,
	VehicleCar,
	VehicleSUV,
	VehicleTruck,
}

// TerminalStatuses список терминальных статусов бронирований
// Используется для фильтрации при подсчёте занятости слотов
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}

// ActiveStatuses список нетерминальных статусов бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusActive,
}

package models

import (
	"errors"
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetCentreBookingsRequest запрос на получение бронирований центра
type GetCentreBookingsRequest struct {
	CentreID        string     `json:"centreId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить завершенные и отмененные
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetCentreBookingsRequest) ToDomainFilter() (domain.CentreBookingsFilter, error) {
	filter := domain.CentreBookingsFilter{
		CentreID:        r.CentreID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// PaymentInfo платеж в составе ответа о бронировании
type PaymentInfo struct {
	ID            string     `json:"id"`
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"paymentMethod"`
	PaymentStatus string     `json:"paymentStatus"`
	PointsUsed    int        `json:"pointsUsed"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	VehicleID    string        `json:"vehicleId"`
	SlotID       string        `json:"slotId"`
	BookingStart time.Time     `json:"bookingStart"`
	BookingEnd   time.Time     `json:"bookingEnd"`
	ActualStart  *time.Time    `json:"actualStart,omitempty"`
	ActualEnd    *time.Time    `json:"actualEnd,omitempty"`
	TotalHours   int           `json:"totalHours"`
	Status       string        `json:"status"`
	Payments     []PaymentInfo `json:"payments,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		VehicleID:    b.VehicleID,
		SlotID:       b.SlotID,
		BookingStart: b.BookingStart,
		BookingEnd:   b.BookingEnd,
		ActualStart:  b.ActualStart,
		ActualEnd:    b.ActualEnd,
		TotalHours:   b.TotalHours,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}

	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// FromDomainPayments конвертирует платежи в response
func FromDomainPayments(payments []*domain.Payment) []PaymentInfo {
	result := make([]PaymentInfo, 0, len(payments))
	for _, p := range payments {
		result = append(result, PaymentInfo{
			ID:            p.ID,
			Amount:        p.Amount,
			PaymentMethod: string(p.PaymentMethod),
			PaymentStatus: string(p.PaymentStatus),
			PointsUsed:    p.PointsUsed,
			PaidAt:        p.PaidAt,
		})
	}
	return result
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending, domain.StatusActive, domain.StatusCompleted, domain.StatusCancelled:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

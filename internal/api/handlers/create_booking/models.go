package create_booking

import (
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
	createBooking "github.com/parkwise/PW-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID        string `json:"slotId"`
	VehicleID     string `json:"vehicleId"`
	BookingStart  string `json:"bookingStart"` // RFC3339, например "2025-10-15T10:00:00Z"
	BookingEnd    string `json:"bookingEnd"`   // RFC3339
	PaymentMethod string `json:"paymentMethod"`
	UsePoints     int    `json:"usePoints,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	SlotID       string `json:"slotId"`
	VehicleID    string `json:"vehicleId"`
	BookingStart string `json:"bookingStart"`
	BookingEnd   string `json:"bookingEnd"`
	TotalHours   int    `json:"totalHours"`
	Status       string `json:"status"`

	BaseAmount         float64 `json:"baseAmount"`
	MembershipDiscount float64 `json:"membershipDiscount"`
	PointsDiscount     float64 `json:"pointsDiscount"`
	TotalAmount        float64 `json:"totalAmount"`
	PointsEarned       int     `json:"pointsEarned"`
	PointsRedeemed     int     `json:"pointsRedeemed"`

	TokenCode string `json:"tokenCode"`
	QRData    string `json:"qrData"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	bookingStart, err := time.Parse(time.RFC3339, r.BookingStart)
	if err != nil {
		return nil, err
	}

	bookingEnd, err := time.Parse(time.RFC3339, r.BookingEnd)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:        userID,
		SlotID:        r.SlotID,
		VehicleID:     r.VehicleID,
		BookingStart:  bookingStart,
		BookingEnd:    bookingEnd,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		UsePoints:     r.UsePoints,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                 resp.BookingID,
		UserID:             resp.UserID,
		SlotID:             resp.SlotID,
		VehicleID:          resp.VehicleID,
		BookingStart:       resp.BookingStart.Format(time.RFC3339),
		BookingEnd:         resp.BookingEnd.Format(time.RFC3339),
		TotalHours:         resp.TotalHours,
		Status:             resp.Status,
		BaseAmount:         resp.BaseAmount,
		MembershipDiscount: resp.MembershipDiscount,
		PointsDiscount:     resp.PointsDiscount,
		TotalAmount:        resp.TotalAmount,
		PointsEarned:       resp.PointsEarned,
		PointsRedeemed:     resp.PointsRedeemed,
		TokenCode:          resp.TokenCode,
		QRData:             resp.QRData,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
	}
}

package domain

import "time"

// PaymentStatus represents the status of a payment record
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// PaymentMethod represents how a payment is made
type PaymentMethod string

const (
	MethodCard   PaymentMethod = "card"
	MethodUPI    PaymentMethod = "upi"
	MethodCash   PaymentMethod = "cash"
	MethodWallet PaymentMethod = "wallet"
)

// Payment represents a charge record tied to a booking
// The amount is fixed at creation time and immutable once completed
type Payment struct {
	ID            string
	BookingID     string
	UserID        string
	Amount        float64
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	PointsUsed    int
	TransactionID *string
	PaidAt        *time.Time
	CreatedAt     time.Time
}

package domain

import "time"

// Token represents the single-use access credential issued per booking
// Exactly one token exists per booking; is_used is monotonic false -> true
type Token struct {
	ID        string
	BookingID string
	TokenCode string
	QRData    string
	IsUsed    bool
	UsedAt    *time.Time
	CreatedAt time.Time
}

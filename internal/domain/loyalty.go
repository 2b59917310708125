package domain

import "time"

// LoyaltyPoints represents a user's loyalty point balance
// Invariant: Points = TotalEarned - TotalRedeemed
type LoyaltyPoints struct {
	ID            string
	UserID        string
	Points        int
	TotalEarned   int
	TotalRedeemed int
	UpdatedAt     time.Time
}

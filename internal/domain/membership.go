package domain

import "time"

// MembershipStatus represents the status of a membership subscription
type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "active"
	MembershipExpired   MembershipStatus = "expired"
	MembershipCancelled MembershipStatus = "cancelled"
)

// BillingPeriod represents the subscription billing period
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// MembershipPlan represents a purchasable discount plan
type MembershipPlan struct {
	ID                 string
	Name               string
	DiscountPercentage float64
	PriceMonthly       float64
	PriceYearly        float64
	CreatedAt          time.Time
}

// UserMembership represents an active discount plan subscription
// At most one active membership per user at a time
type UserMembership struct {
	ID        string
	UserID    string
	PlanID    string
	StartDate time.Time
	EndDate   time.Time
	Status    MembershipStatus
	CreatedAt time.Time
}

// IsActiveAt returns true if the membership grants a discount at the given time
func (m *UserMembership) IsActiveAt(now time.Time) bool {
	return m.Status == MembershipActive && !now.After(m.EndDate)
}

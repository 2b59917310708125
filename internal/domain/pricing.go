package domain

import (
	"math"
	"time"
)

// PriceQuote is a full cost breakdown for a booking window
type PriceQuote struct {
	Hours              int
	BaseAmount         float64
	MembershipDiscount float64
	PointsDiscount     float64
	TotalAmount        float64
	PointsEarned       int
}

// BillableHours returns the number of billable hours for a window,
// rounded up to whole hours with a minimum of one hour
func BillableHours(start, end time.Time) int {
	hours := int(math.Ceil(end.Sub(start).Hours()))
	if hours < MinBillableHours {
		return MinBillableHours
	}
	return hours
}

// ComputeQuote calculates the price of a booking
// Discount order is fixed: membership percentage first, then loyalty points.
// Points cover at most the remainder after the membership discount,
// the total never goes below zero
func ComputeQuote(start, end time.Time, hourlyRate, discountPercentage float64, pointsBalance, pointsRequested int) PriceQuote {
	hours := BillableHours(start, end)
	base := float64(hours) * hourlyRate

	membershipDiscount := base * discountPercentage / 100

	pointsAvailable := pointsRequested
	if pointsBalance < pointsAvailable {
		pointsAvailable = pointsBalance
	}

	remainder := base - membershipDiscount
	pointsDiscount := float64(pointsAvailable) * PointValue
	if pointsDiscount > remainder {
		pointsDiscount = remainder
	}
	if pointsDiscount < 0 {
		pointsDiscount = 0
	}

	total := base - membershipDiscount - pointsDiscount
	if total < 0 {
		total = 0
	}

	return PriceQuote{
		Hours:              hours,
		BaseAmount:         base,
		MembershipDiscount: membershipDiscount,
		PointsDiscount:     pointsDiscount,
		TotalAmount:        total,
		PointsEarned:       int(math.Floor(base * LoyaltyEarnRate)),
	}
}

// PointsRedeemed returns the number of loyalty points consumed by a quote
func (q PriceQuote) PointsRedeemed() int {
	return int(q.PointsDiscount / PointValue)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBillableHours(t *testing.T) {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"exact two hours", start.Add(2 * time.Hour), 2},
		{"partial hour rounds up", start.Add(90 * time.Minute), 2},
		{"one minute bills full hour", start.Add(time.Minute), 1},
		{"zero duration bills minimum", start, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BillableHours(start, tt.end))
		})
	}
}

func TestComputeQuote(t *testing.T) {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	t.Run("no discounts", func(t *testing.T) {
		q := ComputeQuote(start, end, 50, 0, 0, 0)

		assert.Equal(t, 4, q.Hours)
		assert.Equal(t, 200.0, q.BaseAmount)
		assert.Equal(t, 0.0, q.MembershipDiscount)
		assert.Equal(t, 0.0, q.PointsDiscount)
		assert.Equal(t, 200.0, q.TotalAmount)
		assert.Equal(t, 20, q.PointsEarned)
	})

	t.Run("membership discount only", func(t *testing.T) {
		q := ComputeQuote(start, end, 50, 15, 0, 0)

		assert.Equal(t, 200.0, q.BaseAmount)
		assert.Equal(t, 30.0, q.MembershipDiscount)
		assert.Equal(t, 170.0, q.TotalAmount)
		// Баллы начисляются от базовой стоимости, не от итоговой
		assert.Equal(t, 20, q.PointsEarned)
	})

	t.Run("membership and points together", func(t *testing.T) {
		q := ComputeQuote(start, end, 50, 15, 100, 50)

		assert.Equal(t, 30.0, q.MembershipDiscount)
		assert.Equal(t, 50.0, q.PointsDiscount)
		assert.Equal(t, 120.0, q.TotalAmount)
		assert.Equal(t, 50, q.PointsRedeemed())
	})

	t.Run("points capped by balance", func(t *testing.T) {
		q := ComputeQuote(start, end, 50, 0, 30, 100)

		assert.Equal(t, 30.0, q.PointsDiscount)
		assert.Equal(t, 170.0, q.TotalAmount)
	})

	t.Run("points capped by remainder after membership", func(t *testing.T) {
		q := ComputeQuote(start, end, 50, 90, 1000, 1000)

		assert.Equal(t, 180.0, q.MembershipDiscount)
		assert.Equal(t, 20.0, q.PointsDiscount)
		assert.Equal(t, 0.0, q.TotalAmount)
		assert.Equal(t, 20, q.PointsRedeemed())
	})

	t.Run("total never negative", func(t *testing.T) {
		q := ComputeQuote(start, end, 50, 100, 500, 500)

		assert.Equal(t, 200.0, q.MembershipDiscount)
		assert.Equal(t, 0.0, q.PointsDiscount)
		assert.Equal(t, 0.0, q.TotalAmount)
	})
}

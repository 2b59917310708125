package models

import (
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// SubscribeRequest запрос на оформление подписки
type SubscribeRequest struct {
	UserID        string `json:"userId"`
	PlanID        string `json:"planId"`
	BillingPeriod string `json:"billingPeriod"` // monthly | yearly
}

// PlanResponse ответ с данными тарифного плана
type PlanResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	DiscountPercentage float64 `json:"discountPercentage"`
	PriceMonthly       float64 `json:"priceMonthly"`
	PriceYearly        float64 `json:"priceYearly"`
}

// PlanListResponse ответ со списком тарифных планов
type PlanListResponse struct {
	Plans []*PlanResponse `json:"plans"`
	Total int             `json:"total"`
}

// MembershipResponse ответ с данными подписки
type MembershipResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	PlanID    string    `json:"planId"`
	PlanName  string    `json:"planName"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
}

// FromDomainPlan конвертирует domain модель в response
func FromDomainPlan(p *domain.MembershipPlan) *PlanResponse {
	return &PlanResponse{
		ID:                 p.ID,
		Name:               p.Name,
		DiscountPercentage: p.DiscountPercentage,
		PriceMonthly:       p.PriceMonthly,
		PriceYearly:        p.PriceYearly,
	}
}

// FromDomainPlanList конвертирует список domain моделей в response
func FromDomainPlanList(plans []*domain.MembershipPlan) *PlanListResponse {
	result := make([]*PlanResponse, 0, len(plans))
	for _, p := range plans {
		result = append(result, FromDomainPlan(p))
	}

	return &PlanListResponse{
		Plans: result,
		Total: len(result),
	}
}

// FromDomainMembership конвертирует domain модель в response
func FromDomainMembership(m *domain.UserMembership, planName string) *MembershipResponse {
	return &MembershipResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		PlanID:    m.PlanID,
		PlanName:  planName,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Status:    string(m.Status),
	}
}

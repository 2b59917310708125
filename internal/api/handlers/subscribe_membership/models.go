package subscribe_membership

// SubscribeMembershipRequest HTTP request model
type SubscribeMembershipRequest struct {
	PlanID        string `json:"planId"`
	BillingPeriod string `json:"billingPeriod"` // monthly | yearly
}

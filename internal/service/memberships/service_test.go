package memberships

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkwise/PW-BookingService/internal/domain"
	membershipRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/membership"
	"github.com/parkwise/PW-BookingService/internal/service/memberships/models"
)

type fakeMembershipRepo struct {
	plans  map[string]*domain.MembershipPlan
	active map[string]*domain.UserMembership
}

func (f *fakeMembershipRepo) ListPlans(_ context.Context) ([]*domain.MembershipPlan, error) {
	result := make([]*domain.MembershipPlan, 0, len(f.plans))
	for _, p := range f.plans {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakeMembershipRepo) GetPlanByID(_ context.Context, id string) (*domain.MembershipPlan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, membershipRepo.ErrPlanNotFound
	}
	return p, nil
}

func (f *fakeMembershipRepo) GetActiveByUserID(_ context.Context, userID string) (*domain.UserMembership, error) {
	m, ok := f.active[userID]
	if !ok {
		return nil, membershipRepo.ErrMembershipNotFound
	}
	return m, nil
}

func (f *fakeMembershipRepo) Create(_ context.Context, membership *domain.UserMembership) (*domain.UserMembership, error) {
	membership.ID = "membership-1"
	f.active[membership.UserID] = membership
	return membership, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeMembershipRepo, time.Time) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	repo := &fakeMembershipRepo{
		plans: map[string]*domain.MembershipPlan{
			"plan-1": {ID: "plan-1", Name: "Gold", DiscountPercentage: 15, PriceMonthly: 499, PriceYearly: 4990},
		},
		active: make(map[string]*domain.UserMembership),
	}

	svc := NewService(repo, fakeTxManager{}, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: now}
	return svc, repo, now
}

func TestSubscribe_Monthly(t *testing.T) {
	svc, _, now := newService()

	resp, err := svc.Subscribe(context.Background(), &models.SubscribeRequest{
		UserID:        "user-1",
		PlanID:        "plan-1",
		BillingPeriod: "monthly",
	})
	require.NoError(t, err)

	assert.Equal(t, "Gold", resp.PlanName)
	assert.Equal(t, string(domain.MembershipActive), resp.Status)
	assert.Equal(t, now.AddDate(0, 1, 0), resp.EndDate)
}

func TestSubscribe_Yearly(t *testing.T) {
	svc, _, now := newService()

	resp, err := svc.Subscribe(context.Background(), &models.SubscribeRequest{
		UserID:        "user-1",
		PlanID:        "plan-1",
		BillingPeriod: "yearly",
	})
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(1, 0, 0), resp.EndDate)
}

func TestSubscribe_AlreadySubscribed(t *testing.T) {
	svc, repo, now := newService()
	repo.active["user-1"] = &domain.UserMembership{
		UserID:  "user-1",
		PlanID:  "plan-1",
		Status:  domain.MembershipActive,
		EndDate: now.AddDate(0, 1, 0),
	}

	_, err := svc.Subscribe(context.Background(), &models.SubscribeRequest{
		UserID:        "user-1",
		PlanID:        "plan-1",
		BillingPeriod: "monthly",
	})
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestSubscribe_PlanNotFound(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Subscribe(context.Background(), &models.SubscribeRequest{
		UserID:        "user-1",
		PlanID:        "missing",
		BillingPeriod: "monthly",
	})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestSubscribe_InvalidPeriod(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Subscribe(context.Background(), &models.SubscribeRequest{
		UserID:        "user-1",
		PlanID:        "plan-1",
		BillingPeriod: "weekly",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListPlans(t *testing.T) {
	svc, _, _ := newService()

	resp, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

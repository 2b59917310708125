package loyalty

import (
	"context"
	"fmt"
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// BalanceResponse ответ с балансом баллов лояльности
type BalanceResponse struct {
	UserID        string    `json:"userId"`
	Points        int       `json:"points"`
	TotalEarned   int       `json:"totalEarned"`
	TotalRedeemed int       `json:"totalRedeemed"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Service сервис для работы с баллами лояльности
type Service struct {
	loyaltyRepo LoyaltyRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса лояльности
func NewService(loyaltyRepo LoyaltyRepository, logger Logger) *Service {
	return &Service{
		loyaltyRepo: loyaltyRepo,
		logger:      logger,
	}
}

// GetBalance получает баланс баллов пользователя
// Чужой баланс видит только администратор
func (s *Service) GetBalance(ctx context.Context, userID string, identity domain.Identity) (*BalanceResponse, error) {
	s.logger.Info("GetBalance: fetching loyalty balance for user=%s", userID)

	if userID != identity.UserID && identity.Role != domain.RoleAdmin {
		s.logger.Warn("GetBalance: access denied for user=%s to balance of user=%s", identity.UserID, userID)
		return nil, ErrAccessDenied
	}

	points, err := s.loyaltyRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetBalance: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetBalance - repository error: %v", ErrInternal, err)
	}

	return &BalanceResponse{
		UserID:        points.UserID,
		Points:        points.Points,
		TotalEarned:   points.TotalEarned,
		TotalRedeemed: points.TotalRedeemed,
		UpdatedAt:     points.UpdatedAt,
	}, nil
}

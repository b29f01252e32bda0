package service

import (
	"context"

	"github.com/bibliotheca/lending-service/internal/model"
	"go.uber.org/zap"
)

func (s *Service) GetFeeAccount(ctx context.Context, userName string) (model.FeeAccount, error) {
	return s.repo.GetFeeAccount(ctx, userName)
}

// SettleFee zeroes the balance after the payment collaborator confirms the
// charge. The account must already exist.
func (s *Service) SettleFee(ctx context.Context, userName string) error {
	if err := s.repo.SettleFee(ctx, userName); err != nil {
		return err
	}
	s.log.Info("fees settled", zap.String("user", userName))
	return nil
}

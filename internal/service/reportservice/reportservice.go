package reportservice

import (
	"context"

	"github.com/mkorsun/storefront/internal/domain"
	"go.uber.org/zap"
)

type OrderRepo interface {
	All(ctx context.Context) ([]domain.Order, error)
	TotalSales(ctx context.Context) (int, error)
}

type Service struct {
	orderRepo OrderRepo
}

func New(orderRepo OrderRepo) *Service {
	return &Service{
		orderRepo: orderRepo,
	}
}

// Report returns every recorded order plus the running sales total.
func (s *Service) Report(ctx context.Context) ([]domain.Order, int, error) {
	orders, err := s.orderRepo.All(ctx)
	if err != nil {
		zap.L().Error("failed to fetch orders", zap.Error(err))
		return nil, 0, err
	}
	totalSales, err := s.orderRepo.TotalSales(ctx)
	if err != nil {
		zap.L().Error("failed to sum sales", zap.Error(err))
		return nil, 0, err
	}
	return orders, totalSales, nil
}

package cartservice

import (
	"context"
	"errors"

	"github.com/mkorsun/storefront/internal/domain"
	"go.uber.org/zap"
)

type CartRepo interface {
	Add(ctx context.Context, userID int, line domain.CartLine) error
	Get(ctx context.Context, userID int) ([]domain.CartLine, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}

var ErrInvalidProductOrQty = errors.New("invalid product or qty")

type Service struct {
	cartRepo    CartRepo
	productRepo ProductRepo
}

func New(cartRepo CartRepo, productRepo ProductRepo) *Service {
	return &Service{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Add checks the requested quantity against stock at add time only.
// Nothing is reserved; checkout re-validates against current stock.
func (s *Service) Add(ctx context.Context, userID, productID, qty int) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		zap.L().Error("failed to look up product", zap.Error(err))
		return err
	}
	if product == nil || qty < 1 || product.Stock < qty {
		return ErrInvalidProductOrQty
	}

	if err := s.cartRepo.Add(ctx, userID, domain.CartLine{ProductID: productID, Qty: qty}); err != nil {
		zap.L().Error("failed to add cart line", zap.Error(err))
		return err
	}
	zap.L().Info("cart line added", zap.Int("userID", userID), zap.Int("productID", productID), zap.Int("qty", qty))
	return nil
}

func (s *Service) Get(ctx context.Context, userID int) ([]domain.CartLine, error) {
	lines, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get cart", zap.Error(err))
		return nil, err
	}
	return lines, nil
}

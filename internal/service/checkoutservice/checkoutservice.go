package checkoutservice

import (
	"context"
	"errors"
	"sync"

	"github.com/mkorsun/storefront/internal/domain"
	"go.uber.org/zap"
)

type CartRepo interface {
	Get(ctx context.Context, userID int) ([]domain.CartLine, error)
	Clear(ctx context.Context, userID int) error
}

type ProductRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	DecrementStock(ctx context.Context, id, qty int) (*domain.Product, error)
}

type OrderRepo interface {
	Append(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

type UserRepo interface {
	AddPoints(ctx context.Context, userID, points int) (*domain.User, error)
}

// Notifier hands a completed order to the logistics integration.
// It must not block and its outcome never affects checkout.
//
//go:generate mockgen -destination=notifier_mock.go -package=checkoutservice github.com/mkorsun/storefront/internal/service/checkoutservice Notifier
type Notifier interface {
	Notify(order domain.Order)
}

var (
	ErrCartEmpty       = errors.New("cart empty")
	ErrItemUnavailable = errors.New("item unavailable")
)

// pointsDivisor: every full 10 currency units spent earn one point.
const pointsDivisor = 10

type Result struct {
	Total  int
	Points int
}

// Service runs the checkout transaction: validate the cart against
// current stock, decrement inventory, record the order, notify
// shipping, clear the cart and award points.
//
// In legacy mode each line is checked and decremented in cart order,
// so a failure on line N leaves lines 1..N-1 already decremented, the
// order unrecorded and the cart intact. That matches the behavior of
// the system this one replaces. Atomic mode validates the whole cart
// before touching stock.
type Service struct {
	// mu serializes the whole check-then-decrement section so two
	// concurrent checkouts cannot both pass a stock check before
	// either decrements.
	mu sync.Mutex

	cartRepo    CartRepo
	productRepo ProductRepo
	orderRepo   OrderRepo
	userRepo    UserRepo
	notifier    Notifier
	atomic      bool
}

func New(cartRepo CartRepo, productRepo ProductRepo, orderRepo OrderRepo, userRepo UserRepo, notifier Notifier, atomic bool) *Service {
	return &Service{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		atomic:      atomic,
	}
}

func (s *Service) Checkout(ctx context.Context, userID int) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get cart", zap.Error(err))
		return nil, err
	}
	if len(cart) == 0 {
		return nil, ErrCartEmpty
	}

	if s.atomic {
		if err := s.validateCart(ctx, cart); err != nil {
			return nil, err
		}
	}

	total := 0
	for _, line := range cart {
		product, err := s.productRepo.DecrementStock(ctx, line.ProductID, line.Qty)
		if err != nil {
			zap.L().Warn("cart line unavailable",
				zap.Int("userID", userID),
				zap.Int("productID", line.ProductID),
				zap.Int("qty", line.Qty),
				zap.Error(err))
			return nil, ErrItemUnavailable
		}
		// Price as read at this moment, not at cart-add time.
		total += product.Price * line.Qty
	}

	order, err := s.orderRepo.Append(ctx, &domain.Order{
		UserID: userID,
		Items:  cart,
		Total:  total,
	})
	if err != nil {
		zap.L().Error("failed to record order", zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(*order)

	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		zap.L().Error("failed to clear cart", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.AddPoints(ctx, userID, total/pointsDivisor)
	if err != nil {
		zap.L().Error("failed to award points", zap.Error(err))
		return nil, err
	}

	zap.L().Info("checkout complete",
		zap.Int("userID", userID),
		zap.Int("orderID", order.ID),
		zap.Int("total", total))
	return &Result{Total: total, Points: user.Points}, nil
}

// validateCart checks every line against current stock before any
// decrement, accumulating demand so duplicate lines for the same
// product are counted together.
func (s *Service) validateCart(ctx context.Context, cart []domain.CartLine) error {
	needed := make(map[int]int, len(cart))
	for _, line := range cart {
		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrItemUnavailable
		}
		needed[line.ProductID] += line.Qty
		if product.Stock < needed[line.ProductID] {
			return ErrItemUnavailable
		}
	}
	return nil
}

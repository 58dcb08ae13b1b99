package catalogservice

import (
	"context"
	"errors"
	"strings"

	"github.com/mkorsun/storefront/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}

var ErrProductNotFound = errors.New("not found")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// List filters the catalog by a case-insensitive substring match on
// the product name. An empty term matches everything. Results keep
// catalog insertion order.
func (s *Service) List(ctx context.Context, term string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return nil, err
	}
	if term == "" {
		return products, nil
	}

	needle := strings.ToLower(term)
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *Service) Create(ctx context.Context, name string, price, cost, stock int) (*domain.Product, error) {
	product := &domain.Product{
		Name:  name,
		Price: price,
		Cost:  cost,
		Stock: stock,
	}
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		zap.L().Error("failed to create product", zap.Error(err))
		return nil, err
	}
	zap.L().Info("product created", zap.Int("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, patch domain.ProductPatch) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		zap.L().Info("product not found for update", zap.Int("id", id))
		return nil, ErrProductNotFound
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Info("product not found for delete", zap.Int("id", id))
		return ErrProductNotFound
	}
	zap.L().Info("product deleted", zap.Int("id", id))
	return nil
}

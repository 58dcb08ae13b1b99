package productrepo

import (
	"context"
	"errors"
	"sync"

	"github.com/mkorsun/storefront/internal/domain"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Repo is the in-memory catalog. Listing order is insertion order;
// ids keep growing after deletions so they are never reused.
type Repo struct {
	mu       sync.RWMutex
	products []*domain.Product
	nextID   int
}

func New() *Repo {
	return &Repo{nextID: 1}
}

// NewWithSeed builds a catalog pre-populated with the given products,
// assigning sequential ids in order.
func NewWithSeed(seed ...domain.Product) *Repo {
	r := New()
	for i := range seed {
		r.Create(context.Background(), &seed[i])
	}
	return r
}

func (r *Repo) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

// FindByID returns (nil, nil) when the product does not exist.
func (r *Repo) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *Repo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)

	copied := *product
	return &copied, nil
}

// Update applies a partial patch. Nil patch fields keep the current
// value; explicit zeros are written through.
func (r *Repo) Update(ctx context.Context, id int, patch domain.ProductPatch) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID != id {
			continue
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Cost != nil {
			p.Cost = *patch.Cost
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		copied := *p
		return &copied, nil
	}
	return nil, ErrProductNotFound
}

func (r *Repo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// DecrementStock is the checkout's check-and-act step for one line:
// it fails without touching stock when the product is gone or the
// remaining stock is short, and never drives stock negative.
func (r *Repo) DecrementStock(ctx context.Context, id, qty int) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID != id {
			continue
		}
		if p.Stock < qty {
			return nil, ErrInsufficientStock
		}
		p.Stock -= qty
		copied := *p
		return &copied, nil
	}
	return nil, ErrProductNotFound
}

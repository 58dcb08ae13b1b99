package orderrepo

import (
	"context"
	"sync"
	"time"

	"github.com/mkorsun/storefront/internal/domain"
)

// Repo is the append-only order ledger. Orders are immutable once
// appended; there is no mutation or deletion path.
type Repo struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func New() *Repo {
	return &Repo{}
}

func (r *Repo) Append(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = len(r.orders) + 1
	order.CreatedAt = time.Now()

	items := make([]domain.CartLine, len(order.Items))
	copy(items, order.Items)
	stored := *order
	stored.Items = items
	r.orders = append(r.orders, stored)

	copied := stored
	return &copied, nil
}

func (r *Repo) All(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *Repo) TotalSales(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, o := range r.orders {
		total += o.Total
	}
	return total, nil
}

package cartrepo

import (
	"context"
	"sync"

	"github.com/mkorsun/storefront/internal/domain"
)

// Repo holds one ordered line list per user. Lines for the same
// product are kept separate, not merged.
type Repo struct {
	mu    sync.RWMutex
	carts map[int][]domain.CartLine
}

func New() *Repo {
	return &Repo{carts: make(map[int][]domain.CartLine)}
}

func (r *Repo) Add(ctx context.Context, userID int, line domain.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[userID] = append(r.carts[userID], line)
	return nil
}

// Get returns a copy of the user's cart, empty when there is none.
func (r *Repo) Get(ctx context.Context, userID int) ([]domain.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := r.carts[userID]
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

func (r *Repo) Clear(ctx context.Context, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}

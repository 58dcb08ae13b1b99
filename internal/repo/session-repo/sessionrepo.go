package sessionrepo

import (
	"context"
	"sync"
)

// Repo maps opaque session tokens to user ids. Sessions never expire
// and there is no revocation; a user may hold several tokens at once.
// That is a known limitation carried over from the original design.
type Repo struct {
	mu       sync.RWMutex
	sessions map[string]int
}

func New() *Repo {
	return &Repo{sessions: make(map[string]int)}
}

func (r *Repo) Save(ctx context.Context, token string, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token] = userID
	return nil
}

func (r *Repo) Resolve(ctx context.Context, token string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.sessions[token]
	return userID, ok
}

package userrepo

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mkorsun/storefront/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

// Repo keeps every registered account in memory. Users are never
// deleted, so the backing slice doubles as the id sequence.
type Repo struct {
	mu    sync.RWMutex
	users []*domain.User
}

func New() *Repo {
	return &Repo{}
}

func (r *Repo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = len(r.users) + 1
	user.CreatedAt = time.Now()
	// The first registered account is the shop administrator.
	if len(r.users) == 0 {
		user.Role = domain.RoleAdmin
	}
	r.users = append(r.users, user)

	copied := *user
	return &copied, nil
}

// FindByUsername returns (nil, nil) when no such account exists.
func (r *Repo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *Repo) FindByID(ctx context.Context, id int) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 1 || id > len(r.users) {
		return nil, ErrUserNotFound
	}
	copied := *r.users[id-1]
	return &copied, nil
}

// AddPoints credits loyalty points and returns the updated user.
func (r *Repo) AddPoints(ctx context.Context, userID, points int) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if userID < 1 || userID > len(r.users) {
		return nil, ErrUserNotFound
	}
	u := r.users[userID-1]
	u.Points += points

	copied := *u
	return &copied, nil
}

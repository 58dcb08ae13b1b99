package settingsrepo

import (
	"context"
	"sync"

	"github.com/mkorsun/storefront/internal/domain"
)

// Repo holds the single shop branding record.
type Repo struct {
	mu       sync.RWMutex
	settings domain.Settings
}

func New() *Repo {
	return &Repo{
		settings: domain.Settings{Name: "My Shop"},
	}
}

func (r *Repo) Get(ctx context.Context) (domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.settings, nil
}

// Update applies a partial patch and returns the resulting record.
// Present-but-empty strings are written through.
func (r *Repo) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if patch.Name != nil {
		r.settings.Name = *patch.Name
	}
	if patch.Logo != nil {
		r.settings.Logo = *patch.Logo
	}
	if patch.Banner != nil {
		r.settings.Banner = *patch.Banner
	}
	return r.settings, nil
}

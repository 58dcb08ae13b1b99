package settingsrepo

import (
	"context"
	"testing"

	"github.com/mkorsun/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func TestDefaults(t *testing.T) {
	repo := New()

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{Name: "My Shop"}, settings)
}

func TestUpdate(t *testing.T) {
	repo := New()
	ctx := context.Background()

	updated, err := repo.Update(ctx, domain.SettingsPatch{Logo: strPtr("logo.png")})
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{Name: "My Shop", Logo: "logo.png"}, updated)

	// A present empty string is applied, an absent field is kept.
	updated, err = repo.Update(ctx, domain.SettingsPatch{Name: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{Name: "", Logo: "logo.png"}, updated)
}

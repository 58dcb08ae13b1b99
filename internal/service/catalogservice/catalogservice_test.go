package catalogservice

import (
	"context"
	"testing"

	"github.com/mkorsun/storefront/internal/domain"
	productrepo "github.com/mkorsun/storefront/internal/repo/product-repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newService() *Service {
	return New(productrepo.NewWithSeed(
		domain.Product{Name: "Example Product", Price: 100, Cost: 80, Stock: 10},
		domain.Product{Name: "Blue Mug", Price: 25, Cost: 10, Stock: 40},
	))
}

func TestList(t *testing.T) {
	tests := []struct {
		name          string
		term          string
		expectedNames []string
	}{
		{
			name:          "Empty term matches all",
			term:          "",
			expectedNames: []string{"Example Product", "Blue Mug"},
		},
		{
			name:          "Case-insensitive substring",
			term:          "MUG",
			expectedNames: []string{"Blue Mug"},
		},
		{
			name:          "Mid-word match",
			term:          "oduc",
			expectedNames: []string{"Example Product"},
		},
		{
			name:          "No match",
			term:          "shoe",
			expectedNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService()

			products, err := service.List(context.Background(), tt.term)
			require.NoError(t, err)

			names := make([]string, 0, len(products))
			for _, p := range products {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.expectedNames, names)
		})
	}
}

func TestCreate(t *testing.T) {
	service := newService()

	created, err := service.Create(context.Background(), "Red Mug", 30, 12, 15)
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, "Red Mug", created.Name)

	products, err := service.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestUpdate(t *testing.T) {
	service := newService()
	ctx := context.Background()

	updated, err := service.Update(ctx, 1, domain.ProductPatch{Price: intPtr(150), Stock: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 150, updated.Price)
	assert.Equal(t, 0, updated.Stock)
	assert.Equal(t, 80, updated.Cost)

	_, err = service.Update(ctx, 42, domain.ProductPatch{Price: intPtr(1)})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDelete(t *testing.T) {
	service := newService()
	ctx := context.Background()

	require.NoError(t, service.Delete(ctx, 1))
	assert.ErrorIs(t, service.Delete(ctx, 1), ErrProductNotFound)

	products, err := service.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

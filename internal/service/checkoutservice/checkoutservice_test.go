package checkoutservice

import (
	"context"
	"testing"

	"github.com/mkorsun/storefront/internal/domain"
	cartrepo "github.com/mkorsun/storefront/internal/repo/cart-repo"
	orderrepo "github.com/mkorsun/storefront/internal/repo/order-repo"
	productrepo "github.com/mkorsun/storefront/internal/repo/product-repo"
	userrepo "github.com/mkorsun/storefront/internal/repo/user-repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type fixture struct {
	service  *Service
	carts    *cartrepo.Repo
	products *productrepo.Repo
	orders   *orderrepo.Repo
	users    *userrepo.Repo
	notifier *MockNotifier
}

func newFixture(t *testing.T, atomic bool, seed ...domain.Product) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		carts:    cartrepo.New(),
		products: productrepo.NewWithSeed(seed...),
		orders:   orderrepo.New(),
		users:    userrepo.New(),
		notifier: NewMockNotifier(ctrl),
	}
	f.service = New(f.carts, f.products, f.orders, f.users, f.notifier, atomic)

	_, err := f.users.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	return f
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, false, domain.Product{Name: "Example Product", Price: 100, Cost: 80, Stock: 10})
	require.NoError(t, f.carts.Add(ctx, 1, domain.CartLine{ProductID: 1, Qty: 3}))

	f.notifier.EXPECT().Notify(gomock.Any()).Do(func(order domain.Order) {
		assert.Equal(t, 1, order.UserID)
		assert.Equal(t, 300, order.Total)
		assert.Equal(t, []domain.CartLine{{ProductID: 1, Qty: 3}}, order.Items)
	})

	result, err := f.service.Checkout(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 300, result.Total)
	assert.Equal(t, 30, result.Points)

	product, err := f.products.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, product.Stock)

	orders, err := f.orders.All(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 300, orders[0].Total)

	cart, err := f.carts.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart)

	user, err := f.users.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, user.Points)
}

func TestCheckoutAccumulatesPoints(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, false, domain.Product{Name: "Example Product", Price: 95, Cost: 80, Stock: 10})
	f.notifier.EXPECT().Notify(gomock.Any()).Times(2)

	require.NoError(t, f.carts.Add(ctx, 1, domain.CartLine{ProductID: 1, Qty: 1}))
	result, err := f.service.Checkout(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 95, result.Total)
	// floor(95/10) = 9
	assert.Equal(t, 9, result.Points)

	require.NoError(t, f.carts.Add(ctx, 1, domain.CartLine{ProductID: 1, Qty: 2}))
	result, err = f.service.Checkout(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 190, result.Total)
	// Points reported are the user's running balance: 9 + floor(190/10).
	assert.Equal(t, 28, result.Points)
}

func TestCheckoutUsesPriceAtCheckoutTime(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, false, domain.Product{Name: "Example Product", Price: 100, Cost: 80, Stock: 10})
	require.NoError(t, f.carts.Add(ctx, 1, domain.CartLine{ProductID: 1, Qty: 2}))

	newPrice := 200
	_, err := f.products.Update(ctx, 1, domain.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	f.notifier.EXPECT().Notify(gomock.Any())

	result, err := f.service.Checkout(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 400, result.Total)
}

func TestCheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, false, domain.Product{Name: "Example Product", Price: 100, Cost: 80, Stock: 10})

	_, err := f.service.Checkout(ctx, 1)
	assert.ErrorIs(t, err, ErrCartEmpty)

	orders, err := f.orders.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	product, err := f.products.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, product.Stock)
}

// In legacy mode a failure on a later line leaves earlier decrements
// committed, while the order is not recorded and the cart survives.
func TestCheckoutPartialFailureLegacyMode(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, false,
		domain.Product{Name: "Plenty", Price: 100, Cost: 80, Stock: 10},
		domain.Product{Name: "Scarce", Price: 50, Cost: 30, Stock: 1},
	)
	require.NoError(t, f.carts.Add(ctx, 1, domain.CartLine{ProductID: 1, Qty: 3}))
	require.NoError(t, f.carts.Add(ctx, 1, domain.CartLine{ProductID: 2, Qty: 5}))

	_, err := f.service.Checkout(ctx, 1)
	assert.ErrorIs(t, err, ErrItemUnavailable)

	first, err := f.products.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, first.Stock)

	second, err := f.products.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Stock)

	orders, err := f.orders.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	cart, err := f.carts.Get(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, cart, 2)

	user, err := f.users.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, user.Points)
}

func TestCheckoutAtomicModeLeavesStockUntouched(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, true,
		domain.Product{Name: "Plenty", Price: 100, Cost: 80, Stock: 10},
		domain.Product{Name: "Scarce", Price: 50, Cost: 30, Stock: 1},
	)
	require.NoError(t, f.carts.Add(ctx, 1, domain.CartLine{ProductID: 1, Qty: 3}))
	require.NoError(t, f.carts.Add(ctx, 1, domain.CartLine{ProductID: 2, Qty: 5}))

	_, err := f.service.Checkout(ctx, 1)
	assert.ErrorIs(t, err, ErrItemUnavailable)

	first, err := f.products.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, first.Stock)

	second, err := f.products.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Stock)
}

func TestCheckoutAtomicModeCountsDuplicateLinesTogether(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, true, domain.Product{Name: "Example Product", Price: 100, Cost: 80, Stock: 10})
	// Each line fits on its own but the cart as a whole does not.
	require.NoError(t, f.carts.Add(ctx, 1, domain.CartLine{ProductID: 1, Qty: 6}))
	require.NoError(t, f.carts.Add(ctx, 1, domain.CartLine{ProductID: 1, Qty: 6}))

	_, err := f.service.Checkout(ctx, 1)
	assert.ErrorIs(t, err, ErrItemUnavailable)

	product, err := f.products.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, product.Stock)
}

func TestCheckoutDeletedProduct(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, false, domain.Product{Name: "Example Product", Price: 100, Cost: 80, Stock: 10})
	require.NoError(t, f.carts.Add(ctx, 1, domain.CartLine{ProductID: 1, Qty: 1}))
	require.NoError(t, f.products.Delete(ctx, 1))

	_, err := f.service.Checkout(ctx, 1)
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

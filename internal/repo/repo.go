package repo

import (
	"github.com/mkorsun/storefront/internal/domain"
	cartrepo "github.com/mkorsun/storefront/internal/repo/cart-repo"
	orderrepo "github.com/mkorsun/storefront/internal/repo/order-repo"
	productrepo "github.com/mkorsun/storefront/internal/repo/product-repo"
	sessionrepo "github.com/mkorsun/storefront/internal/repo/session-repo"
	settingsrepo "github.com/mkorsun/storefront/internal/repo/settings-repo"
	userrepo "github.com/mkorsun/storefront/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repo
	ProductRepo  *productrepo.Repo
	CartRepo     *cartrepo.Repo
	OrderRepo    *orderrepo.Repo
	SessionRepo  *sessionrepo.Repo
	SettingsRepo *settingsrepo.Repo
}

func New() *Repositories {
	return &Repositories{
		UserRepo: userrepo.New(),
		ProductRepo: productrepo.NewWithSeed(
			domain.Product{Name: "Example Product", Price: 100, Cost: 80, Stock: 10},
		),
		CartRepo:     cartrepo.New(),
		OrderRepo:    orderrepo.New(),
		SessionRepo:  sessionrepo.New(),
		SettingsRepo: settingsrepo.New(),
	}
}

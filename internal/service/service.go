package service

import (
	"github.com/mkorsun/storefront/internal/config"
	"github.com/mkorsun/storefront/internal/repo"
	authservice "github.com/mkorsun/storefront/internal/service/authservice"
	cartservice "github.com/mkorsun/storefront/internal/service/cartservice"
	catalogservice "github.com/mkorsun/storefront/internal/service/catalogservice"
	checkoutservice "github.com/mkorsun/storefront/internal/service/checkoutservice"
	reportservice "github.com/mkorsun/storefront/internal/service/reportservice"
	settingsservice "github.com/mkorsun/storefront/internal/service/settingsservice"
	pkgauth "github.com/mkorsun/storefront/pkg/auth"
)

type Services struct {
	AuthService     *authservice.Service
	CatalogService  *catalogservice.Service
	CartService     *cartservice.Service
	CheckoutService *checkoutservice.Service
	SettingsService *settingsservice.Service
	ReportService   *reportservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, notifier checkoutservice.Notifier) *Services {
	authService := authservice.New(repo.UserRepo, repo.SessionRepo, &pkgauth.HashService{}, &pkgauth.TokenGenerator{})
	catalogService := catalogservice.New(repo.ProductRepo)
	cartService := cartservice.New(repo.CartRepo, repo.ProductRepo)
	checkoutService := checkoutservice.New(repo.CartRepo, repo.ProductRepo, repo.OrderRepo, repo.UserRepo, notifier, cfg.AtomicCheckout)
	settingsService := settingsservice.New(repo.SettingsRepo)
	reportService := reportservice.New(repo.OrderRepo)

	return &Services{
		AuthService:     authService,
		CatalogService:  catalogService,
		CartService:     cartService,
		CheckoutService: checkoutService,
		SettingsService: settingsService,
		ReportService:   reportService,
	}
}

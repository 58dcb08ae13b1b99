package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mkorsun/storefront/docs"
	adminhandlers "github.com/mkorsun/storefront/internal/handlers/admin"
	authhandlers "github.com/mkorsun/storefront/internal/handlers/auth"
	carthandlers "github.com/mkorsun/storefront/internal/handlers/cart"
	cataloghandlers "github.com/mkorsun/storefront/internal/handlers/catalog"
	"github.com/mkorsun/storefront/internal/service"
	"github.com/mkorsun/storefront/pkg/auth"
	"github.com/mkorsun/storefront/pkg/utils"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	Products(w http.ResponseWriter, r *http.Request)
	Settings(w http.ResponseWriter, r *http.Request)
}

type CartHandler interface {
	AddToCart(w http.ResponseWriter, r *http.Request)
	ViewCart(w http.ResponseWriter, r *http.Request)
	Checkout(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListProducts(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	CatalogHandler CatalogHandler
	CartHandler    CartHandler
	AdminHandler   AdminHandler

	sessions auth.SessionResolver
	admin    auth.AdminChecker
}

func New(s *service.Services, sessions auth.SessionResolver) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		CatalogHandler: cataloghandlers.New(s.CatalogService, s.SettingsService),
		CartHandler:    carthandlers.New(s.CartService, s.CheckoutService),
		AdminHandler:   adminhandlers.New(s.CatalogService, s.SettingsService, s.ReportService),
		sessions:       sessions,
		admin:          s.AuthService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusNotFound, "not found")
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Post("/register", h.AuthHandler.Register)
	r.Post("/login", h.AuthHandler.Login)
	r.Get("/products", h.CatalogHandler.Products)
	r.Get("/settings", h.CatalogHandler.Settings)

	r.Group(func(r chi.Router) {
		r.Use(auth.SessionMiddleware(h.sessions))
		r.Post("/cart", h.CartHandler.AddToCart)
		r.Get("/cart", h.CartHandler.ViewCart)
		r.Post("/checkout", h.CartHandler.Checkout)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(auth.AdminMiddleware(h.sessions, h.admin))
		r.Get("/products", h.AdminHandler.ListProducts)
		r.Post("/products", h.AdminHandler.CreateProduct)
		r.Put("/products", h.AdminHandler.UpdateProduct)
		r.Delete("/products", h.AdminHandler.DeleteProduct)
		r.Get("/settings", h.AdminHandler.GetSettings)
		r.Put("/settings", h.AdminHandler.UpdateSettings)
		r.Post("/settings", h.AdminHandler.UpdateSettings)
		r.Get("/report", h.AdminHandler.Report)
	})

	return r
}

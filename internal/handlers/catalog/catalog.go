package catalog

import (
	"context"
	"net/http"

	"github.com/mkorsun/storefront/internal/domain"
	"github.com/mkorsun/storefront/internal/dto"
	"github.com/mkorsun/storefront/pkg/utils"
)

type CatalogService interface {
	List(ctx context.Context, term string) ([]domain.Product, error)
}

type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
}

// CatalogHandler serves the public storefront: product browsing and
// shop branding. No session required.
type CatalogHandler struct {
	catalogService  CatalogService
	settingsService SettingsService
}

func New(catalogService CatalogService, settingsService SettingsService) *CatalogHandler {
	return &CatalogHandler{
		catalogService:  catalogService,
		settingsService: settingsService,
	}
}

// Products godoc
//
//	@Summary		Browse the catalog
//	@Description	List products, optionally filtered by a case-insensitive substring of the name.
//	@Tags			Catalog
//	@Produce		json
//	@Param			q	query		string	false	"Name filter"
//	@Success		200	{array}		dto.ProductDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/products [get]
func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	products, err := h.catalogService.List(r.Context(), term)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]dto.ProductDTO, len(products))
	for i, p := range products {
		response[i] = dto.ProductDTO{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Cost:  p.Cost,
			Stock: p.Stock,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Settings godoc
//
//	@Summary		Get shop branding
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	dto.SettingsDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/settings [get]
func (h *CatalogHandler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettingsDTO{
		Name:   settings.Name,
		Logo:   settings.Logo,
		Banner: settings.Banner,
	})
}

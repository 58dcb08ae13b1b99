package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mkorsun/storefront/internal/domain"
	"github.com/mkorsun/storefront/internal/dto"
	catalogservice "github.com/mkorsun/storefront/internal/service/catalogservice"
	"github.com/mkorsun/storefront/pkg/utils"
)

type CatalogService interface {
	List(ctx context.Context, term string) ([]domain.Product, error)
	Create(ctx context.Context, name string, price, cost, stock int) (*domain.Product, error)
	Update(ctx context.Context, id int, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}

type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error)
}

type ReportService interface {
	Report(ctx context.Context) ([]domain.Order, int, error)
}

// AdminHandler serves the admin panel. The admin gate itself lives in
// middleware; every request reaching these handlers is an admin.
type AdminHandler struct {
	catalogService  CatalogService
	settingsService SettingsService
	reportService   ReportService
}

func New(catalogService CatalogService, settingsService SettingsService, reportService ReportService) *AdminHandler {
	return &AdminHandler{
		catalogService:  catalogService,
		settingsService: settingsService,
		reportService:   reportService,
	}
}

// ListProducts godoc
//
//	@Summary		List all products
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		dto.ProductDTO
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Router			/admin/products [get]
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.List(r.Context(), "")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]dto.ProductDTO, len(products))
	for i, p := range products {
		response[i] = dto.ProductDTO{ID: p.ID, Name: p.Name, Price: p.Price, Cost: p.Cost, Stock: p.Stock}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProductRequestDTO	true	"Product fields"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Router			/admin/products [post]
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.catalogService.Create(r.Context(), req.Name, req.Price, req.Cost, req.Stock); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "added"})
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Description	Partial update: absent fields are preserved, explicit zeros are applied.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProductRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Not found"
//	@Router			/admin/products [put]
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := domain.ProductPatch{Price: req.Price, Cost: req.Cost, Stock: req.Stock}
	if _, err := h.catalogService.Update(r.Context(), req.ID, patch); err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "updated"})
}

// DeleteProduct godoc
//
//	@Summary		Delete a product
//	@Tags			Admin
//	@Produce		json
//	@Param			id	query		int	true	"Product id"
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Router			/admin/products [delete]
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.catalogService.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "deleted"})
}

// GetSettings godoc
//
//	@Summary		Get shop settings
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	dto.SettingsDTO
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Router			/admin/settings [get]
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
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

// UpdateSettings godoc
//
//	@Summary		Update shop settings
//	@Description	Partial update of the branding record.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateSettingsRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Router			/admin/settings [put]
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := domain.SettingsPatch{Name: req.Name, Logo: req.Logo, Banner: req.Banner}
	if _, err := h.settingsService.Update(r.Context(), patch); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "updated"})
}

// Report godoc
//
//	@Summary		Sales report
//	@Description	Every recorded order plus the running total of sales.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	dto.ReportResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Router			/admin/report [get]
func (h *AdminHandler) Report(w http.ResponseWriter, r *http.Request) {
	orders, totalSales, err := h.reportService.Report(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := dto.ReportResponseDTO{
		Orders:     make([]dto.OrderDTO, len(orders)),
		TotalSales: totalSales,
	}
	for i, o := range orders {
		items := make([]dto.CartLineDTO, len(o.Items))
		for j, line := range o.Items {
			items[j] = dto.CartLineDTO{ProductID: line.ProductID, Qty: line.Qty}
		}
		response.Orders[i] = dto.OrderDTO{
			ID:        o.ID,
			UserID:    o.UserID,
			Items:     items,
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

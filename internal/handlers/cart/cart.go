package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkorsun/storefront/internal/domain"
	"github.com/mkorsun/storefront/internal/dto"
	cartservice "github.com/mkorsun/storefront/internal/service/cartservice"
	checkoutservice "github.com/mkorsun/storefront/internal/service/checkoutservice"
	"github.com/mkorsun/storefront/pkg/auth"
	"github.com/mkorsun/storefront/pkg/utils"
)

//go:generate mockgen -source=cart.go -destination=cart_mock.go -package=cart
type CartService interface {
	Add(ctx context.Context, userID, productID, qty int) error
	Get(ctx context.Context, userID int) ([]domain.CartLine, error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, userID int) (*checkoutservice.Result, error)
}

type CartHandler struct {
	cartService     CartService
	checkoutService CheckoutService
}

func New(cartService CartService, checkoutService CheckoutService) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

// AddToCart godoc
//
//	@Summary		Add a product to the cart
//	@Description	Append a line to the user's cart. Quantity is checked against stock at add time only.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddToCartRequestDTO	true	"Line to add"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid product or qty"
//	@Failure		401		{object}	utils.Response	"Not logged in"
//	@Router			/cart [post]
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddToCartRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.cartService.Add(r.Context(), userID, req.ProductID, req.Qty); err != nil {
		switch {
		case errors.Is(err, cartservice.ErrInvalidProductOrQty):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "added"})
}

// ViewCart godoc
//
//	@Summary		View the cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{array}		dto.CartLineDTO
//	@Failure		401	{object}	utils.Response	"Not logged in"
//	@Router			/cart [get]
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	lines, err := h.cartService.Get(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]dto.CartLineDTO, len(lines))
	for i, line := range lines {
		response[i] = dto.CartLineDTO{ProductID: line.ProductID, Qty: line.Qty}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Checkout godoc
//
//	@Summary		Check out the cart
//	@Description	Validate the cart against current stock, decrement inventory, record the order and award loyalty points (one per full 10 units spent).
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	dto.CheckoutResponseDTO
//	@Failure		400	{object}	utils.Response	"Cart empty or item unavailable"
//	@Failure		401	{object}	utils.Response	"Not logged in"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/checkout [post]
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	result, err := h.checkoutService.Checkout(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, checkoutservice.ErrCartEmpty),
			errors.Is(err, checkoutservice.ErrItemUnavailable):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckoutResponseDTO{
		Message: "checked out",
		Total:   result.Total,
		Points:  result.Points,
	})
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/grocery-storefront/internal/services"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: utils.NewValidator()}
}

// GetCart godoc
//	@Summary		Get the cart
//	@Description	Returns the session's cart lines with subtotal, delivery fee, total and minimum-order status.
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Success		200				{object}	models.CartView			"Cart"
//	@Failure		500				{object}	response.ErrorResponse	"Session store unavailable"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		view, err := h.cartService.GetCart(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// AddItem godoc
//	@Summary		Add an item to the cart
//	@Description	Adds one unit of a product, ready-made box or saved custom box. Adding an item already in the cart increments its quantity.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string						false	"Shopper session"
//	@Param			item			body		models.AddCartItemRequest	true	"Item"
//	@Success		200				{object}	models.CartView				"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse		"Invalid item or out of stock"
//	@Failure		404				{object}	response.ErrorResponse		"Item not found"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		logger = logger.With(slog.String("kind", string(req.Kind)), slog.String("itemId", req.ID))

		view, err := h.cartService.AddItem(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to add item to cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int("itemCount", view.Totals.ItemCount))
		response.Success(w, http.StatusOK, view)
	}
}

// UpdateQuantity godoc
//	@Summary		Set a cart line quantity
//	@Description	Sets the quantity of a cart line. A quantity of zero or less removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string							false	"Shopper session"
//	@Param			id				path		string							true	"Item ID"
//	@Param			quantity		body		models.UpdateQuantityRequest	true	"New quantity"
//	@Success		200				{object}	models.CartView					"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse			"Validation error"
//	@Failure		404				{object}	response.ErrorResponse			"Item not in cart"
//	@Router			/cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		itemID := r.PathValue("id")

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		view, err := h.cartService.UpdateQuantity(r.Context(), sessionID, itemID, *req.Quantity)
		if err != nil {
			logger.Warn("Failed to update cart quantity", slog.String("itemId", itemID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// RemoveItem godoc
//	@Summary		Remove a cart line
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Param			id				path		string					true	"Item ID"
//	@Success		200				{object}	models.CartView			"Updated cart"
//	@Failure		500				{object}	response.ErrorResponse	"Session store unavailable"
//	@Router			/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		view, err := h.cartService.RemoveItem(r.Context(), sessionID, r.PathValue("id"))
		if err != nil {
			logger.Error("Failed to remove cart item", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// ClearCart godoc
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Success		200				{object}	models.CartView			"Empty cart"
//	@Failure		500				{object}	response.ErrorResponse	"Session store unavailable"
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		view, err := h.cartService.ClearCart(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, view)
	}
}

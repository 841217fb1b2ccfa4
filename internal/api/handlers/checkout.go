package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/grocery-storefront/internal/services"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout godoc
//	@Summary		Hand the order off to WhatsApp
//	@Description	Validates the delivery details, formats the order message and returns the WhatsApp link that carries it. The cart is emptied on success.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Param			checkout		body		models.CheckoutRequest	true	"Delivery details"
//	@Success		200				{object}	models.CheckoutResponse	"Hand-off link"
//	@Failure		400				{object}	response.ErrorResponse	"Empty cart, minimum not reached or invalid delivery details"
//	@Failure		500				{object}	response.ErrorResponse	"Session store unavailable"
//	@Router			/checkout [post]
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		// delivery details are validated after sanitizing, in the service
		var req models.CheckoutRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid checkout input", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid request body").WithError(err))
			return
		}

		resp, err := h.checkoutService.Checkout(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Checkout rejected", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		metrics.RecordHandoff(string(resp.Language))
		response.Success(w, http.StatusOK, resp)
	}
}

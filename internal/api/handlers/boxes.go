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

type BoxHandler struct {
	boxService service.BoxService
	validator  *validator.Validate
}

func NewBoxHandler(boxService service.BoxService) *BoxHandler {
	return &BoxHandler{boxService: boxService, validator: utils.NewValidator()}
}

// ListBoxes godoc
//	@Summary		List saved custom boxes
//	@Tags			Custom Boxes
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Success		200				{array}		models.Box				"Saved boxes, newest first"
//	@Failure		500				{object}	response.ErrorResponse	"Session store unavailable"
//	@Router			/custom-boxes [get]
func (h *BoxHandler) ListBoxes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		saved, err := h.boxService.ListBoxes(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to list custom boxes", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, saved)
	}
}

// SaveBox godoc
//	@Summary		Save the draft as a custom box
//	@Description	Saves the draft under the given name. When the draft was loaded for editing, or existing_id is set, the saved box is replaced in place.
//	@Tags			Custom Boxes
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Param			box				body		models.SaveBoxRequest	true	"Box name"
//	@Success		201				{object}	models.Box				"Saved box"
//	@Failure		400				{object}	response.ErrorResponse	"Blank name or empty draft"
//	@Router			/custom-boxes [post]
func (h *BoxHandler) SaveBox() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.SaveBoxRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid save box input")
			return
		}

		box, err := h.boxService.SaveBox(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to save custom box", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Custom box saved", slog.String("boxId", box.ID))
		response.Success(w, http.StatusCreated, box)
	}
}

// DeleteBox godoc
//	@Summary		Delete a saved custom box
//	@Tags			Custom Boxes
//	@Param			X-Session-ID	header	string	false	"Shopper session"
//	@Param			id				path	string	true	"Box ID"
//	@Success		204				"Deleted"
//	@Failure		404				{object}	response.ErrorResponse	"Custom box not found"
//	@Router			/custom-boxes/{id} [delete]
func (h *BoxHandler) DeleteBox() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		boxID := r.PathValue("id")

		if err := h.boxService.DeleteBox(r.Context(), sessionID, boxID); err != nil {
			logger.Warn("Failed to delete custom box", slog.String("boxId", boxID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Custom box deleted", slog.String("boxId", boxID))
		w.WriteHeader(http.StatusNoContent)
	}
}

// EditBox godoc
//	@Summary		Load a saved box into the draft
//	@Tags			Custom Boxes
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Param			id				path		string					true	"Box ID"
//	@Success		200				{object}	models.Draft			"Draft"
//	@Failure		404				{object}	response.ErrorResponse	"Custom box not found"
//	@Router			/custom-boxes/{id}/edit [post]
func (h *BoxHandler) EditBox() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		draft, err := h.boxService.EditBox(r.Context(), sessionID, r.PathValue("id"))
		if err != nil {
			logger.Warn("Failed to load custom box for editing", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, draft)
	}
}

// GetDraft godoc
//	@Summary		Get the box draft
//	@Tags			Custom Boxes
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Success		200				{object}	models.Draft			"Draft"
//	@Failure		500				{object}	response.ErrorResponse	"Session store unavailable"
//	@Router			/custom-boxes/draft [get]
func (h *BoxHandler) GetDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		draft, err := h.boxService.GetDraft(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to get draft", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, draft)
	}
}

// AddToDraft godoc
//	@Summary		Add a product to the draft
//	@Tags			Custom Boxes
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Param			item			body		models.DraftItemRequest	true	"Product"
//	@Success		200				{object}	models.Draft			"Draft"
//	@Failure		400				{object}	response.ErrorResponse	"Product is out of stock"
//	@Failure		404				{object}	response.ErrorResponse	"Product not found"
//	@Router			/custom-boxes/draft/items [post]
func (h *BoxHandler) AddToDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.DraftItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid draft item input")
			return
		}

		draft, err := h.boxService.AddToDraft(r.Context(), sessionID, req.ProductID)
		if err != nil {
			logger.Warn("Failed to add product to draft", slog.String("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, draft)
	}
}

// RemoveFromDraft godoc
//	@Summary		Remove one unit of a product from the draft
//	@Tags			Custom Boxes
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Param			id				path		string					true	"Product ID"
//	@Success		200				{object}	models.Draft			"Draft"
//	@Failure		404				{object}	response.ErrorResponse	"Product not in box"
//	@Router			/custom-boxes/draft/items/{id} [delete]
func (h *BoxHandler) RemoveFromDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		draft, err := h.boxService.RemoveFromDraft(r.Context(), sessionID, r.PathValue("id"))
		if err != nil {
			logger.Warn("Failed to remove product from draft", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, draft)
	}
}

// ClearDraft godoc
//	@Summary		Discard the draft
//	@Tags			Custom Boxes
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Success		200				{object}	models.Draft			"Empty draft"
//	@Failure		500				{object}	response.ErrorResponse	"Session store unavailable"
//	@Router			/custom-boxes/draft [delete]
func (h *BoxHandler) ClearDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		draft, err := h.boxService.ClearDraft(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to clear draft", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, draft)
	}
}

// AddDraftToCart godoc
//	@Summary		Save the draft and add it to the cart
//	@Description	Saves the draft (using a default name when none is given) and adds the resulting box to the cart. The body is optional.
//	@Tags			Custom Boxes
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Param			box				body		models.SaveBoxRequest	false	"Optional name and language"
//	@Success		200				{object}	models.CartView			"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse	"Empty draft"
//	@Router			/custom-boxes/draft/cart [post]
func (h *BoxHandler) AddDraftToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.SaveBoxRequest
		if r.ContentLength != 0 && !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid draft to cart input")
			return
		}

		view, err := h.boxService.AddDraftToCart(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to add draft to cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Custom box added to cart", slog.Int("itemCount", view.Totals.ItemCount))
		response.Success(w, http.StatusOK, view)
	}
}

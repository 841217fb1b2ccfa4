package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/grocery-storefront/internal/services"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AdminProductHandler struct {
	adminService service.AdminProductService
	validator    *validator.Validate
}

func NewAdminProductHandler(adminService service.AdminProductService) *AdminProductHandler {
	return &AdminProductHandler{adminService: adminService, validator: utils.NewValidator()}
}

// adminLogger returns the request logger tagged with the signed-in admin, or
// writes a 401 when the claims are missing.
func adminLogger(w http.ResponseWriter, r *http.Request, action string) (*slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
	if !ok {
		logger.Warn("Unauthorized admin request", slog.String("action", action))
		response.Error(w, errors.UnauthorizedError("Authentication required"))

		return nil, false
	}

	return logger.With(slog.String("adminEmail", claims.Email)), true
}

// ListProducts godoc
//	@Summary		List products for the dashboard
//	@Description	Lists the catalog exactly as the storefront resolves it, bypassing the cache, with totals per category.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	models.ProductList		"Catalog with stats"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/products [get]
func (h *AdminProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := adminLogger(w, r, "list_products")
		if !ok {
			return
		}

		list, err := h.adminService.ListProducts(r.Context())
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, list)
	}
}

// CreateProduct godoc
//	@Summary		Create a product
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product"
//	@Success		201		{object}	models.Product				"Created product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		500		{object}	response.ErrorResponse		"Product store error"
//	@Security		BearerAuth
//	@Router			/admin/products [post]
func (h *AdminProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := adminLogger(w, r, "create_product")
		if !ok {
			return
		}

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.adminService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.String("productId", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

// UpdateProduct godoc
//	@Summary		Update a stored product
//	@Description	Partial update: omitted fields keep their value.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID"
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product				"Updated product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [put]
func (h *AdminProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := adminLogger(w, r, "update_product")
		if !ok {
			return
		}

		id := r.PathValue("id")
		logger = logger.With(slog.String("productId", id))

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input")
			return
		}

		product, err := h.adminService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated")
		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//	@Summary		Delete a product
//	@Description	Deletes a stored product. A bundled product is hidden from the storefront instead.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string						true	"Product ID"
//	@Success		200	{object}	models.DeleteProductResponse	"Deleted or hidden"
//	@Failure		401	{object}	response.ErrorResponse			"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse			"Product not found"
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [delete]
func (h *AdminProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := adminLogger(w, r, "delete_product")
		if !ok {
			return
		}

		id := r.PathValue("id")
		logger = logger.With(slog.String("productId", id))

		resp, err := h.adminService.DeleteProduct(r.Context(), id)
		if err != nil {
			logger.Error("Failed to delete product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted", slog.Bool("masked", resp.Masked))
		response.Success(w, http.StatusOK, resp)
	}
}

// SeedProducts godoc
//	@Summary		Copy the bundled catalog into the product store
//	@Tags			Admin
//	@Produce		json
//	@Success		201	{object}	models.SeedResponse		"Inserted count"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		409	{object}	response.ErrorResponse	"Product store already has data"
//	@Security		BearerAuth
//	@Router			/admin/products/seed [post]
func (h *AdminProductHandler) SeedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := adminLogger(w, r, "seed_products")
		if !ok {
			return
		}

		resp, err := h.adminService.SeedProducts(r.Context())
		if err != nil {
			logger.Warn("Failed to seed products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Products seeded", slog.Int("inserted", resp.Inserted))
		response.Success(w, http.StatusCreated, resp)
	}
}

// RemoveDuplicates godoc
//	@Summary		Remove duplicate products
//	@Description	Keeps the oldest stored product per English name and deletes the rest.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	models.DedupeResponse	"Removed ids"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/products/dedupe [post]
func (h *AdminProductHandler) RemoveDuplicates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := adminLogger(w, r, "dedupe_products")
		if !ok {
			return
		}

		resp, err := h.adminService.RemoveDuplicates(r.Context())
		if err != nil {
			logger.Error("Failed to remove duplicates", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

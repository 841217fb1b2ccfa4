package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/grocery-storefront/internal/services"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func queryFlag(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))

	return err == nil && v
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Lists the storefront catalog. Products come from the product store when it has any, otherwise from the bundled catalog minus hidden items.
//	@Tags			Catalog
//	@Produce		json
//	@Param			category	query		string					false	"Category"	Enums(vegetables, fruits, herbs, organic, imported)
//	@Param			q			query		string					false	"Search text, matched against both names"
//	@Param			deals		query		bool					false	"Only active deals"
//	@Param			bestSellers	query		bool					false	"Only best sellers"
//	@Param			inStock		query		bool					false	"Only in-stock products"
//	@Param			limit		query		int						false	"Maximum number of products"	minimum(1)
//	@Success		200			{object}	models.ProductList		"Catalog"
//	@Failure		400			{object}	response.ErrorResponse	"Unknown category"
//	@Router			/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		query := r.URL.Query()

		limit, err := strconv.Atoi(query.Get("limit"))
		if err != nil || limit < 0 {
			limit = 0
		}

		filter := models.ProductFilter{
			Category:    models.Category(query.Get("category")),
			Query:       query.Get("q"),
			DealsOnly:   queryFlag(r, "deals"),
			BestSellers: queryFlag(r, "bestSellers"),
			InStockOnly: queryFlag(r, "inStock"),
			Limit:       limit,
		}

		list, err := h.catalogService.ListProducts(r.Context(), filter)
		if err != nil {
			logger.Warn("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		metrics.RecordCatalogSource(string(list.Source))
		logger.Info("Products listed", slog.Int("count", len(list.Products)), slog.String("source", string(list.Source)))
		response.Success(w, http.StatusOK, list)
	}
}

// GetProduct godoc
//	@Summary		Get a product
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	models.Product			"Product"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		id := r.PathValue("id")

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get product", slog.String("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListBoxes godoc
//	@Summary		List ready-made boxes
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}	models.Box	"Ready-made boxes"
//	@Router			/boxes [get]
func (h *CatalogHandler) ListBoxes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.catalogService.ListReadyBoxes(r.Context()))
	}
}

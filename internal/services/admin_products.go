package service

import (
	"context"
	stdErrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/grocery-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils"
)

const productDeletedMessage = "Product deleted"

type AdminProductService interface {
	ListProducts(ctx context.Context) (*models.ProductList, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) (*models.DeleteProductResponse, error)
	SeedProducts(ctx context.Context) (*models.SeedResponse, error)
	RemoveDuplicates(ctx context.Context) (*models.DedupeResponse, error)
}

type adminProductService struct {
	repo    repository.ProductRepository
	masks   repository.MaskRepository
	source  *productSource
	catalog CatalogService
}

func NewAdminProductService(repo repository.ProductRepository, masks repository.MaskRepository, catalog CatalogService) AdminProductService {
	return &adminProductService{
		repo:    repo,
		masks:   masks,
		source:  &productSource{repo: repo, masks: masks},
		catalog: catalog,
	}
}

func stats(products []*models.Product) *models.CatalogStats {
	s := &models.CatalogStats{ByCategory: make(map[models.Category]int, len(models.Categories))}

	for _, c := range models.Categories {
		s.ByCategory[c] = 0
	}

	for _, p := range products {
		s.Total++
		s.ByCategory[p.Category]++

		if p.InStock {
			s.InStock++
		}
	}

	return s
}

// ListProducts always reads through to the store so the dashboard never shows a stale cache.
func (s *adminProductService) ListProducts(ctx context.Context) (*models.ProductList, error) {
	list := s.source.list(ctx)
	list.Stats = stats(list.Products)

	return list, nil
}

// checkProduct enforces the fields a product must carry and the deal rule:
// a deal needs a positive deal price below the regular price.
func checkProduct(p *models.Product) error {
	fields := map[string]string{}

	if p.Name.Ar == "" {
		fields["name.ar"] = "required"
	}

	if p.Name.En == "" {
		fields["name.en"] = "required"
	}

	if p.Price.IsNegative() {
		fields["price"] = "must not be negative"
	}

	if p.IsDeal {
		switch {
		case p.DealPrice == nil:
			fields["deal_price"] = "required"
		case !p.DealPrice.IsPositive():
			fields["deal_price"] = "must be positive"
		case !p.DealPrice.LessThan(p.Price):
			fields["deal_price"] = "must be below price"
		}
	}

	if len(fields) > 0 {
		return errors.ValidationError("Invalid product").WithFields(fields)
	}

	return nil
}

func (s *adminProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:         models.Localized{Ar: sanitizeText(req.Name.Ar), En: sanitizeText(req.Name.En)},
		Category:     req.Category,
		Price:        req.Price,
		Unit:         req.Unit,
		Image:        req.Image,
		InStock:      true,
		IsDeal:       req.IsDeal,
		IsBestSeller: req.IsBestSeller,
	}

	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	if req.IsDeal {
		product.DealPrice = req.DealPrice
	}

	if err := checkProduct(product); err != nil {
		return nil, err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if err := s.repo.CreateProduct(dbCtx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithDetail(err.Error()).WithError(err)
	}

	s.catalog.Invalidate(ctx)

	return product, nil
}

func (s *adminProductService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product, err := s.repo.GetProductByID(dbCtx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to get product").WithDetail(err.Error()).WithError(err)
	}

	if req.Name != nil {
		product.Name = models.Localized{Ar: sanitizeText(req.Name.Ar), En: sanitizeText(req.Name.En)}
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.IsDeal != nil {
		product.IsDeal = *req.IsDeal
	}
	if req.DealPrice != nil {
		product.DealPrice = req.DealPrice
	}
	if req.IsBestSeller != nil {
		product.IsBestSeller = *req.IsBestSeller
	}

	if !product.IsDeal {
		product.DealPrice = nil
	}

	if err := checkProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(dbCtx, product); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update product").WithDetail(err.Error()).WithError(err)
	}

	s.catalog.Invalidate(ctx)

	return product, nil
}

// DeleteProduct checks where the product lives first: a stored product is
// deleted, a bundled static one is masked, anything else is not found.
func (s *adminProductService) DeleteProduct(ctx context.Context, id string) (*models.DeleteProductResponse, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := s.repo.GetProductByID(dbCtx, id)

	switch {
	case err == nil:
		if err := s.repo.DeleteProduct(dbCtx, id); err != nil && !stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.DatabaseError("Failed to delete product").WithDetail(err.Error()).WithError(err)
		}

		s.catalog.Invalidate(ctx)

		return &models.DeleteProductResponse{ID: id, Message: productDeletedMessage}, nil

	case stdErrors.Is(err, repository.ErrNotFound):
		if !catalog.IsStatic(id) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		if err := s.masks.Mask(ctx, id); err != nil {
			return nil, errors.ThirdPartyError("Failed to hide product").WithError(err)
		}

		s.catalog.Invalidate(ctx)

		return &models.DeleteProductResponse{ID: id, Masked: true, Message: productDeletedMessage}, nil

	default:
		return nil, errors.DatabaseError("Failed to get product").WithDetail(err.Error()).WithError(err)
	}
}

// SeedProducts copies the bundled catalog into an empty store.
func (s *adminProductService) SeedProducts(ctx context.Context) (*models.SeedResponse, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	count, err := s.repo.CountProducts(dbCtx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count products").WithError(err)
	}

	if count > 0 {
		return nil, errors.ConflictError("Product store already has data")
	}

	static := catalog.StaticProducts()
	products := make([]models.Product, 0, len(static))

	for _, p := range static {
		products = append(products, *p)
	}

	inserted, err := s.repo.BulkInsert(dbCtx, products)
	if err != nil {
		return nil, errors.DatabaseError("Failed to seed products").WithDetail(err.Error()).WithError(err)
	}

	s.catalog.Invalidate(ctx)

	return &models.SeedResponse{Inserted: inserted}, nil
}

// RemoveDuplicates keeps the oldest product per English name and deletes the
// rest. A failed delete is logged and skipped.
func (s *adminProductService) RemoveDuplicates(ctx context.Context) (*models.DedupeResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	products, err := s.repo.ListProducts(dbCtx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	seen := make(map[string]struct{}, len(products))
	removed := []string{}

	// newest first from the store, so walk backwards to meet the oldest copy first
	for i := len(products) - 1; i >= 0; i-- {
		p := products[i]

		if _, dup := seen[p.Name.En]; !dup {
			seen[p.Name.En] = struct{}{}

			continue
		}

		if err := s.repo.DeleteProduct(dbCtx, p.ID); err != nil {
			logger.Warn("Failed to delete duplicate product", slog.String("product_id", p.ID), slog.String("error", err.Error()))

			continue
		}

		removed = append(removed, p.ID)
	}

	if len(removed) > 0 {
		s.catalog.Invalidate(ctx)
	}

	logger.Info("Duplicate products removed", slog.Int("removed", len(removed)))

	return &models.DedupeResponse{Removed: removed}, nil
}

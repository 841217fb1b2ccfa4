package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/cache"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/grocery-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils"
)

const storeUnavailableWarning = "Product store is unavailable, showing the bundled catalog"

// productSource resolves the live product list: store records when there are
// any, otherwise the bundled static catalog minus masked ids.
type productSource struct {
	repo  repository.ProductRepository
	masks repository.MaskRepository
}

func (s *productSource) list(ctx context.Context) *models.ProductList {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	products, err := s.repo.ListProducts(dbCtx)
	if err == nil && len(products) > 0 {
		return &models.ProductList{Products: products, Source: models.SourceStore}
	}

	list := &models.ProductList{Products: s.static(ctx), Source: models.SourceStatic}

	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Falling back to bundled catalog", slog.String("error", err.Error()))
		list.Warning = storeUnavailableWarning
	}

	return list
}

func (s *productSource) static(ctx context.Context) []*models.Product {
	masked, err := s.masks.MaskedIDs(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to read masked products", slog.String("error", err.Error()))
	}

	all := catalog.StaticProducts()
	products := make([]*models.Product, 0, len(all))

	for _, p := range all {
		if _, gone := masked[p.ID]; gone {
			continue
		}

		products = append(products, p)
	}

	return products
}

type CatalogService interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductList, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListReadyBoxes(ctx context.Context) []*models.Box
	ResolveSellable(ctx context.Context, kind models.SellableKind, id string) (models.Sellable, error)
	Invalidate(ctx context.Context)
}

type catalogService struct {
	source *productSource
	cache  cache.Cache
}

func NewCatalogService(repo repository.ProductRepository, masks repository.MaskRepository, c cache.Cache) CatalogService {
	return &catalogService{
		source: &productSource{repo: repo, masks: masks},
		cache:  c,
	}
}

func (s *catalogService) load(ctx context.Context) *models.ProductList {
	logger := middleware.LoggerFromContext(ctx)

	var cached []*models.Product

	found, err := s.cache.Get(ctx, cache.CatalogProductsKey, &cached)
	if err != nil {
		logger.Warn("Catalog cache read failed", slog.String("error", err.Error()))
	}

	if found && len(cached) > 0 {
		return &models.ProductList{Products: cached, Source: models.SourceStore}
	}

	list := s.source.list(ctx)

	if list.Source == models.SourceStore {
		if err := s.cache.Set(ctx, cache.CatalogProductsKey, list.Products, 0); err != nil {
			logger.Warn("Catalog cache write failed", slog.String("error", err.Error()))
		}
	}

	return list
}

func (s *catalogService) ListProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductList, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, errors.BadRequestError("Unknown category").WithDetail(string(filter.Category))
	}

	list := s.load(ctx)

	products := make([]*models.Product, 0, len(list.Products))

	for _, p := range list.Products {
		if !matches(p, filter) {
			continue
		}

		products = append(products, p)

		if filter.Limit > 0 && len(products) == filter.Limit {
			break
		}
	}

	list.Products = products

	return list, nil
}

func matches(p *models.Product, filter models.ProductFilter) bool {
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}

	if filter.DealsOnly && !p.IsDeal {
		return false
	}

	if filter.BestSellers && !p.IsBestSeller {
		return false
	}

	if filter.InStockOnly && !p.InStock {
		return false
	}

	return p.MatchesQuery(filter.Query)
}

// GetProduct looks the id up in the same list the storefront shows, so a
// masked or overridden static product is not reachable.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	for _, p := range s.load(ctx).Products {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, errors.NotFoundError("Product not found")
}

func (s *catalogService) ListReadyBoxes(_ context.Context) []*models.Box {
	return catalog.ReadyBoxes()
}

// ResolveSellable covers catalog kinds only; custom boxes live in the shopper's session.
func (s *catalogService) ResolveSellable(ctx context.Context, kind models.SellableKind, id string) (models.Sellable, error) {
	switch kind {
	case models.KindProduct:
		product, err := s.GetProduct(ctx, id)
		if err != nil {
			return models.Sellable{}, err
		}

		if !product.InStock {
			return models.Sellable{}, errors.BadRequestError("Product is out of stock")
		}

		return models.ProductSellable(product), nil

	case models.KindReadyBox:
		box, ok := catalog.FindReadyBox(id)
		if !ok {
			return models.Sellable{}, errors.NotFoundError("Box not found")
		}

		if !box.InStock {
			return models.Sellable{}, errors.BadRequestError("Box is out of stock")
		}

		return models.BoxSellable(box), nil

	default:
		return models.Sellable{}, errors.BadRequestError("Unsupported item kind").WithDetail(string(kind))
	}
}

// Invalidate drops the cached store list after an admin write.
func (s *catalogService) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.CatalogProductsKey); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Catalog cache invalidation failed", slog.String("error", err.Error()))
	}
}

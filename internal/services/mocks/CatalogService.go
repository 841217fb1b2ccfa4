package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductList, error) {
	args := m.Called(ctx, filter)

	var list *models.ProductList
	if l := args.Get(0); l != nil {
		list = l.(*models.ProductList)
	}

	return list, args.Error(1)
}

func (m *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)

	var product *models.Product
	if p := args.Get(0); p != nil {
		product = p.(*models.Product)
	}

	return product, args.Error(1)
}

func (m *CatalogService) ListReadyBoxes(ctx context.Context) []*models.Box {
	args := m.Called(ctx)

	var boxes []*models.Box
	if b := args.Get(0); b != nil {
		boxes = b.([]*models.Box)
	}

	return boxes
}

func (m *CatalogService) ResolveSellable(ctx context.Context, kind models.SellableKind, id string) (models.Sellable, error) {
	args := m.Called(ctx, kind, id)

	return args.Get(0).(models.Sellable), args.Error(1)
}

func (m *CatalogService) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

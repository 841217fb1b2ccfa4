package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)

	var products []*models.Product
	if p := args.Get(0); p != nil {
		products = p.([]*models.Product)
	}

	return products, args.Error(1)
}

func (m *ProductRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)

	var product *models.Product
	if p := args.Get(0); p != nil {
		product = p.(*models.Product)
	}

	return product, args.Error(1)
}

func (m *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *ProductRepository) CountProducts(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}

func (m *ProductRepository) BulkInsert(ctx context.Context, products []models.Product) (int, error) {
	args := m.Called(ctx, products)

	return args.Int(0), args.Error(1)
}

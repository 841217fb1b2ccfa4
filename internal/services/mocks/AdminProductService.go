package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type AdminProductService struct {
	mock.Mock
}

func (m *AdminProductService) ListProducts(ctx context.Context) (*models.ProductList, error) {
	args := m.Called(ctx)

	var list *models.ProductList
	if l := args.Get(0); l != nil {
		list = l.(*models.ProductList)
	}

	return list, args.Error(1)
}

func (m *AdminProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)

	var product *models.Product
	if p := args.Get(0); p != nil {
		product = p.(*models.Product)
	}

	return product, args.Error(1)
}

func (m *AdminProductService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)

	var product *models.Product
	if p := args.Get(0); p != nil {
		product = p.(*models.Product)
	}

	return product, args.Error(1)
}

func (m *AdminProductService) DeleteProduct(ctx context.Context, id string) (*models.DeleteProductResponse, error) {
	args := m.Called(ctx, id)

	var resp *models.DeleteProductResponse
	if r := args.Get(0); r != nil {
		resp = r.(*models.DeleteProductResponse)
	}

	return resp, args.Error(1)
}

func (m *AdminProductService) SeedProducts(ctx context.Context) (*models.SeedResponse, error) {
	args := m.Called(ctx)

	var resp *models.SeedResponse
	if r := args.Get(0); r != nil {
		resp = r.(*models.SeedResponse)
	}

	return resp, args.Error(1)
}

func (m *AdminProductService) RemoveDuplicates(ctx context.Context) (*models.DedupeResponse, error) {
	args := m.Called(ctx)

	var resp *models.DedupeResponse
	if r := args.Get(0); r != nil {
		resp = r.(*models.DedupeResponse)
	}

	return resp, args.Error(1)
}

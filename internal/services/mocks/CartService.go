package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func cartView(v any) *models.CartView {
	if v == nil {
		return nil
	}

	return v.(*models.CartView)
}

func (m *CartService) GetCart(ctx context.Context, sessionID string) (*models.CartView, error) {
	args := m.Called(ctx, sessionID)

	return cartView(args.Get(0)), args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.CartView, error) {
	args := m.Called(ctx, sessionID, req)

	return cartView(args.Get(0)), args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*models.CartView, error) {
	args := m.Called(ctx, sessionID, itemID, quantity)

	return cartView(args.Get(0)), args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*models.CartView, error) {
	args := m.Called(ctx, sessionID, itemID)

	return cartView(args.Get(0)), args.Error(1)
}

func (m *CartService) ClearCart(ctx context.Context, sessionID string) (*models.CartView, error) {
	args := m.Called(ctx, sessionID)

	return cartView(args.Get(0)), args.Error(1)
}

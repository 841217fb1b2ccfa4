package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) Checkout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	args := m.Called(ctx, sessionID, req)

	var resp *models.CheckoutResponse
	if r := args.Get(0); r != nil {
		resp = r.(*models.CheckoutResponse)
	}

	return resp, args.Error(1)
}

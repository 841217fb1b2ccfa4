package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type AuthService struct {
	mock.Mock
}

func (m *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)

	var resp *models.LoginResponse
	if r := args.Get(0); r != nil {
		resp = r.(*models.LoginResponse)
	}

	return resp, args.Error(1)
}

func (m *AuthService) CreateAdmin(ctx context.Context, req *models.CreateAdminRequest) (*models.Admin, error) {
	args := m.Called(ctx, req)

	var admin *models.Admin
	if a := args.Get(0); a != nil {
		admin = a.(*models.Admin)
	}

	return admin, args.Error(1)
}

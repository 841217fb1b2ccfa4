package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type AdminRepository struct {
	mock.Mock
}

func (m *AdminRepository) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	args := m.Called(ctx, admin)

	return args.Error(0)
}

func (m *AdminRepository) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	args := m.Called(ctx, email)

	var admin *models.Admin
	if a := args.Get(0); a != nil {
		admin = a.(*models.Admin)
	}

	return admin, args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type RateLimitRepository struct {
	mock.Mock
}

func (m *RateLimitRepository) CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}

func (m *RateLimitRepository) ResetLoginAttempts(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

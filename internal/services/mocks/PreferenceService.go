package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type PreferenceService struct {
	mock.Mock
}

func (m *PreferenceService) GetLanguage(ctx context.Context, sessionID string) (models.Language, error) {
	args := m.Called(ctx, sessionID)

	return args.Get(0).(models.Language), args.Error(1)
}

func (m *PreferenceService) SetLanguage(ctx context.Context, sessionID string, lang models.Language) (models.Language, error) {
	args := m.Called(ctx, sessionID, lang)

	return args.Get(0).(models.Language), args.Error(1)
}

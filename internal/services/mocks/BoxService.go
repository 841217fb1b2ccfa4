package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type BoxService struct {
	mock.Mock
}

func draft(v any) *models.Draft {
	if v == nil {
		return nil
	}

	return v.(*models.Draft)
}

func (m *BoxService) GetDraft(ctx context.Context, sessionID string) (*models.Draft, error) {
	args := m.Called(ctx, sessionID)

	return draft(args.Get(0)), args.Error(1)
}

func (m *BoxService) AddToDraft(ctx context.Context, sessionID, productID string) (*models.Draft, error) {
	args := m.Called(ctx, sessionID, productID)

	return draft(args.Get(0)), args.Error(1)
}

func (m *BoxService) RemoveFromDraft(ctx context.Context, sessionID, productID string) (*models.Draft, error) {
	args := m.Called(ctx, sessionID, productID)

	return draft(args.Get(0)), args.Error(1)
}

func (m *BoxService) ClearDraft(ctx context.Context, sessionID string) (*models.Draft, error) {
	args := m.Called(ctx, sessionID)

	return draft(args.Get(0)), args.Error(1)
}

func (m *BoxService) EditBox(ctx context.Context, sessionID, boxID string) (*models.Draft, error) {
	args := m.Called(ctx, sessionID, boxID)

	return draft(args.Get(0)), args.Error(1)
}

func (m *BoxService) ListBoxes(ctx context.Context, sessionID string) ([]models.Box, error) {
	args := m.Called(ctx, sessionID)

	var boxes []models.Box
	if b := args.Get(0); b != nil {
		boxes = b.([]models.Box)
	}

	return boxes, args.Error(1)
}

func (m *BoxService) SaveBox(ctx context.Context, sessionID string, req *models.SaveBoxRequest) (*models.Box, error) {
	args := m.Called(ctx, sessionID, req)

	var box *models.Box
	if b := args.Get(0); b != nil {
		box = b.(*models.Box)
	}

	return box, args.Error(1)
}

func (m *BoxService) DeleteBox(ctx context.Context, sessionID, boxID string) error {
	args := m.Called(ctx, sessionID, boxID)

	return args.Error(0)
}

func (m *BoxService) AddDraftToCart(ctx context.Context, sessionID string, req *models.SaveBoxRequest) (*models.CartView, error) {
	args := m.Called(ctx, sessionID, req)

	var view *models.CartView
	if v := args.Get(0); v != nil {
		view = v.(*models.CartView)
	}

	return view, args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MaskRepository struct {
	mock.Mock
}

func (m *MaskRepository) Mask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MaskRepository) MaskedIDs(ctx context.Context) (map[string]struct{}, error) {
	args := m.Called(ctx)

	var ids map[string]struct{}
	if i := args.Get(0); i != nil {
		ids = i.(map[string]struct{})
	}

	return ids, args.Error(1)
}

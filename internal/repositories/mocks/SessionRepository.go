package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Load(ctx context.Context, snapshot, sessionID string) ([]byte, error) {
	args := m.Called(ctx, snapshot, sessionID)

	var data []byte
	if d := args.Get(0); d != nil {
		data = d.([]byte)
	}

	return data, args.Error(1)
}

func (m *SessionRepository) Save(ctx context.Context, snapshot, sessionID string, data []byte) error {
	args := m.Called(ctx, snapshot, sessionID, data)

	return args.Error(0)
}

func (m *SessionRepository) Delete(ctx context.Context, snapshot, sessionID string) error {
	args := m.Called(ctx, snapshot, sessionID)

	return args.Error(0)
}

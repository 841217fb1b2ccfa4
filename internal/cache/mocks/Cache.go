package mocks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"
)

type Cache struct {
	mock.Mock
}

// Get copies the value given as the first return argument into dest via JSON,
// mirroring what the redis implementation does on a hit.
func (m *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)

	if v := args.Get(0); v != nil && args.Bool(1) {
		data, err := json.Marshal(v)
		if err != nil {
			return false, err
		}

		if err := json.Unmarshal(data, dest); err != nil {
			return false, err
		}
	}

	return args.Bool(1), args.Error(2)
}

func (m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)

	return args.Error(0)
}

func (m *Cache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)

	return args.Error(0)
}

package service_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/grocery-storefront/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// memorySessions keeps snapshots in a map so multi-step flows can be checked end to end.
type memorySessions struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemorySessions() *memorySessions {
	return &memorySessions{data: make(map[string][]byte)}
}

func (m *memorySessions) Load(_ context.Context, snapshot, sessionID string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.data[repository.SessionKey(snapshot, sessionID)], nil
}

func (m *memorySessions) Save(_ context.Context, snapshot, sessionID string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[repository.SessionKey(snapshot, sessionID)] = append([]byte(nil), data...)

	return nil
}

func (m *memorySessions) Delete(_ context.Context, snapshot, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, repository.SessionKey(snapshot, sessionID))

	return nil
}

func (m *memorySessions) raw(snapshot, sessionID string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.data[repository.SessionKey(snapshot, sessionID)]
}

func (m *memorySessions) put(t *testing.T, snapshot, sessionID string, value any) {
	t.Helper()

	data, err := json.Marshal(value)
	require.NoError(t, err)
	require.NoError(t, m.Save(t.Context(), snapshot, sessionID, data))
}

func testPricing() cart.Pricing {
	return cart.Pricing{
		DeliveryFee:  decimal.RequireFromString("1.00"),
		MinimumOrder: decimal.RequireFromString("10.00"),
	}
}

func staticProduct(t *testing.T, id string) *models.Product {
	t.Helper()

	p, ok := catalog.FindStaticProduct(id)
	require.True(t, ok, id)

	return p
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var testNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils/response"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const sessionID = "session-0001"

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(data)
}

// decodeData unwraps the response envelope into dest.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success, rr.Body.String())

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, dest))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) *response.ErrorResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)

	return resp.Error
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

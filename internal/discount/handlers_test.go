package discount_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/prasetia-dev/solidkit/internal/discount"
)

type quoteResponse struct {
	Data struct {
		Tier       string  `json:"tier"`
		Amount     float64 `json:"amount"`
		Discounted float64 `json:"discounted"`
	} `json:"data"`
}

func TestQuote(t *testing.T) {
	handler := &discount.Handler{Validate: validator.New()}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/discounts/quote", strings.NewReader(`{"tier":"gold","amount":1000}`))
	rec := httptest.NewRecorder()
	handler.Quote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp quoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "gold", resp.Data.Tier)
	require.Equal(t, float64(1000), resp.Data.Amount)
	require.InDelta(t, 800, resp.Data.Discounted, 1e-9)
}

func TestQuoteUnknownTier(t *testing.T) {
	handler := &discount.Handler{Validate: validator.New()}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/discounts/quote", strings.NewReader(`{"tier":"diamond","amount":1000}`))
	rec := httptest.NewRecorder()
	handler.Quote(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "unknown discount tier")
}

func TestQuoteMissingTier(t *testing.T) {
	handler := &discount.Handler{Validate: validator.New()}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/discounts/quote", strings.NewReader(`{"amount":1000}`))
	rec := httptest.NewRecorder()
	handler.Quote(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

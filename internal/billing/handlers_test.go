package billing_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/prasetia-dev/solidkit/internal/billing"
)

type totalResponse struct {
	Data struct {
		InvoiceID int64   `json:"invoiceId"`
		Subtotal  float64 `json:"subtotal"`
		Total     float64 `json:"total"`
	} `json:"data"`
}

type saveResponse struct {
	Data struct {
		InvoiceID int64 `json:"invoiceId"`
		Saved     bool  `json:"saved"`
	} `json:"data"`
}

func newBillingHandler() *billing.Handler {
	return &billing.Handler{
		Repo:     billing.Repository{Logger: zerolog.Nop()},
		Validate: validator.New(),
	}
}

func TestInvoiceTotal(t *testing.T) {
	handler := newBillingHandler()

	body := `{"id":1,"taxRate":0.2,"items":[{"name":"Laptop","price":1000},{"name":"Mouse","price":50}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/total", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Total(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp totalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(1), resp.Data.InvoiceID)
	require.Equal(t, float64(1050), resp.Data.Subtotal)
	require.InDelta(t, 1260, resp.Data.Total, 1e-9)
}

func TestInvoiceTotalNoItems(t *testing.T) {
	handler := newBillingHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/total", strings.NewReader(`{"id":7,"taxRate":0.5}`))
	rec := httptest.NewRecorder()
	handler.Total(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp totalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Zero(t, resp.Data.Total)
}

func TestInvoiceTotalInvalidPayload(t *testing.T) {
	handler := newBillingHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/total", strings.NewReader(`{"id":`))
	rec := httptest.NewRecorder()
	handler.Total(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvoiceSave(t *testing.T) {
	handler := newBillingHandler()

	body := `{"id":9,"taxRate":0.1,"items":[{"name":"Monitor","price":300}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Save(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp saveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(9), resp.Data.InvoiceID)
	require.True(t, resp.Data.Saved)
}

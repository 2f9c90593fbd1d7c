package billing

import (
	"encoding/json"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/prasetia-dev/solidkit/internal/common"
)

// Handler exposes invoice endpoints backed by the calculator and the stub
// repository.
type Handler struct {
	Calc     Calculator
	Repo     Repository
	Validate *validator.Validate
}

type invoicePayload struct {
	ID      int64         `json:"id"`
	TaxRate float64       `json:"taxRate"`
	Items   []itemPayload `json:"items" validate:"dive"`
}

type itemPayload struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price"`
}

// Total computes the invoice total without persisting anything.
func (h *Handler) Total(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decode(w, r)
	if !ok {
		return
	}
	inv := payload.toInvoice()
	common.Data(w, http.StatusOK, map[string]any{
		"invoiceId": inv.ID,
		"subtotal":  h.Calc.Subtotal(inv),
		"total":     h.Calc.Total(inv),
	})
}

// Save runs the stub repository and confirms the write.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decode(w, r)
	if !ok {
		return
	}
	inv := payload.toInvoice()
	if err := h.Repo.Save(r.Context(), inv); err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to save invoice", nil)
		return
	}
	common.Data(w, http.StatusCreated, map[string]any{
		"invoiceId": inv.ID,
		"saved":     true,
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (invoicePayload, bool) {
	var payload invoicePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return payload, false
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return payload, false
		}
	}
	return payload, true
}

func (p invoicePayload) toInvoice() Invoice {
	items := make([]Item, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, Item{Name: it.Name, Price: it.Price})
	}
	return Invoice{ID: p.ID, Items: items, TaxRate: p.TaxRate}
}

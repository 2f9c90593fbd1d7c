package discount

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	validator "github.com/go-playground/validator/v10"

	"github.com/prasetia-dev/solidkit/internal/common"
)

// Handler exposes discount quoting endpoints.
type Handler struct {
	Validate *validator.Validate
}

type quoteRequest struct {
	Tier   string  `json:"tier" validate:"required"`
	Amount float64 `json:"amount"`
}

// Quote returns the discounted amount for a tier.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}
	}
	strategy, err := ForTier(req.Tier)
	if err != nil {
		if errors.Is(err, ErrUnknownTier) {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "unknown discount tier", map[string]any{"tier": req.Tier})
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to resolve tier", nil)
		return
	}
	calc := Calculator{Strategy: strategy}
	common.Data(w, http.StatusOK, map[string]any{
		"tier":       strings.ToLower(strings.TrimSpace(req.Tier)),
		"amount":     req.Amount,
		"discounted": calc.Calculate(req.Amount),
	})
}

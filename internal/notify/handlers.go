package notify

import (
	"encoding/json"
	"net/http"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/prasetia-dev/solidkit/internal/common"
)

// Handler dispatches notification requests through the configured senders.
type Handler struct {
	Senders  map[string]Sender
	Validate *validator.Validate
}

type sendRequest struct {
	Channel string `json:"channel" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Send dispatches a message through the requested channel.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
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
	channel := strings.ToLower(strings.TrimSpace(req.Channel))
	sender, ok := h.Senders[channel]
	if !ok {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "unknown notification channel", map[string]any{"channel": req.Channel})
		return
	}
	notifier := Notifier{Sender: sender}
	if err := notifier.Send(r.Context(), req.Message); err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to send notification", nil)
		return
	}
	common.Data(w, http.StatusAccepted, map[string]any{
		"id":      uuid.NewString(),
		"channel": channel,
		"message": req.Message,
	})
}

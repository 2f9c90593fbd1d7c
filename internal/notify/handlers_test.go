package notify_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/prasetia-dev/solidkit/internal/notify"
)

type sendResponse struct {
	Data struct {
		ID      string `json:"id"`
		Channel string `json:"channel"`
		Message string `json:"message"`
	} `json:"data"`
}

func newNotifyHandler() *notify.Handler {
	logger := zerolog.Nop()
	return &notify.Handler{
		Senders: map[string]notify.Sender{
			"email": notify.EmailSender{Logger: logger, From: "noreply@solidkit.local"},
			"sms":   notify.SMSSender{Logger: logger, From: "SOLIDKIT"},
		},
		Validate: validator.New(),
	}
}

func TestSendNotification(t *testing.T) {
	handler := newNotifyHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications", strings.NewReader(`{"channel":"Email","message":"hi"}`))
	rec := httptest.NewRecorder()
	handler.Send(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp sendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "email", resp.Data.Channel)
	require.Equal(t, "hi", resp.Data.Message)

	_, err := uuid.Parse(resp.Data.ID)
	require.NoError(t, err)
}

func TestSendUnknownChannel(t *testing.T) {
	handler := newNotifyHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications", strings.NewReader(`{"channel":"pigeon","message":"hi"}`))
	rec := httptest.NewRecorder()
	handler.Send(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "unknown notification channel")
}

func TestSendMissingMessage(t *testing.T) {
	handler := newNotifyHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications", strings.NewReader(`{"channel":"sms"}`))
	rec := httptest.NewRecorder()
	handler.Send(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

package health

import (
	"net/http"
	"time"

	"github.com/prasetia-dev/solidkit/internal/common"
)

// Handler exposes HTTP handlers for health endpoints. The service has no
// external dependencies, so readiness reports uptime only.
type Handler struct {
	StartedAt time.Time
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness.
func (h Handler) Ready(w http.ResponseWriter, _ *http.Request) {
	started := h.StartedAt
	if started.IsZero() {
		started = time.Now()
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(started).Seconds()),
	})
}

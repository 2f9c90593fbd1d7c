package workforce

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/prasetia-dev/solidkit/internal/common"
)

// Handler reports the worker roster and the capabilities each kind exposes.
type Handler struct {
	Logger zerolog.Logger
}

// List returns the roster with per-kind capability flags.
func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	roster := []Capabilities{
		Describe("human", Human{Logger: h.Logger}),
		Describe("robot", Robot{Logger: h.Logger}),
	}
	common.Data(w, http.StatusOK, roster)
}

package handlers

//go:generate mockgen -source=time.go -destination=time_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-device-balance/internal/models"
)

// ServerTimeGetter defines the method needed by the time handler.
type ServerTimeGetter interface {
	GetServerTime(ctx context.Context) (models.TimeResponse, error)
}

// NewGetTimeHandler returns an HTTP handler exposing the device API clock.
// @Summary Server time
// @Tags system
// @Produce json
// @Success 200 {object} models.TimeResponse
// @Failure 502 {object} handlers.ErrorResponse "Upstream unavailable"
// @Router /time [get]
func NewGetTimeHandler(svc ServerTimeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts, err := svc.GetServerTime(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ts)
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-device-balance/internal/apierrors"
	"github.com/sbilibin2017/gw-device-balance/internal/logger"
)

// ErrorResponse is returned by every endpoint on failure.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Localized message for the operator
	// example: Недостаточно средств на балансе
	Error string `json:"error"`

	// Error kind
	// example: INSUFFICIENT_FUNDS
	Code string `json:"code"`

	// Technical detail
	// example: Insufficient funds for withdrawal
	Message string `json:"message,omitempty"`
}

var statusByKind = map[apierrors.Kind]int{
	apierrors.InvalidAmount:     http.StatusBadRequest,
	apierrors.ValidationError:   http.StatusBadRequest,
	apierrors.DeviceNotFound:    http.StatusNotFound,
	apierrors.PlaceNotFound:     http.StatusNotFound,
	apierrors.InsufficientFunds: http.StatusConflict,
	apierrors.NetworkError:      http.StatusBadGateway,
	apierrors.ServerError:       http.StatusBadGateway,
	apierrors.Unauthorized:      http.StatusBadGateway,
	apierrors.TimeoutError:      http.StatusGatewayTimeout,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	kind := apierrors.KindOf(err)

	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	resp := ErrorResponse{
		Error: apierrors.LocalizedMessage(kind),
		Code:  kind.String(),
	}
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		resp.Message = apiErr.Message
	}

	writeJSON(w, status, resp)
}

// placeParams are the ids taken from the URL path.
type placeParams struct {
	DeviceID int `validate:"gt=0"`
	PlaceID  int `validate:"gte=0"`
}

func parseDeviceID(r *http.Request, v *validator.Validate) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "deviceID"))
	if err != nil {
		return 0, apierrors.Wrap(apierrors.ValidationError, "device id must be an integer", err)
	}
	if err := v.Var(id, "gt=0"); err != nil {
		return 0, apierrors.Wrap(apierrors.ValidationError, "device id must be positive", err)
	}
	return id, nil
}

func parsePlaceParams(r *http.Request, v *validator.Validate) (placeParams, error) {
	var p placeParams
	var err error

	if p.DeviceID, err = strconv.Atoi(chi.URLParam(r, "deviceID")); err != nil {
		return p, apierrors.Wrap(apierrors.ValidationError, "device id must be an integer", err)
	}
	if p.PlaceID, err = strconv.Atoi(chi.URLParam(r, "placeID")); err != nil {
		return p, apierrors.Wrap(apierrors.ValidationError, "place id must be an integer", err)
	}
	if err := v.Struct(p); err != nil {
		return p, apierrors.Wrap(apierrors.ValidationError, "invalid device or place id", err)
	}
	return p, nil
}

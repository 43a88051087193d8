package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-device-balance/internal/apierrors"
	"github.com/sbilibin2017/gw-device-balance/internal/validation"
)

// ValidateAmountRequest carries raw operator input.
// swagger:model ValidateAmountRequest
type ValidateAmountRequest struct {
	// example: 00150.505
	Amount string `json:"amount"`
}

// ValidateAmountResponse reports the scrubbed input and its validity.
// swagger:model ValidateAmountResponse
type ValidateAmountResponse struct {
	// example: 150.505
	Sanitized string `json:"sanitized"`

	// example: false
	IsValid bool `json:"is_valid"`

	// example: at most 2 decimal places
	Error string `json:"error,omitempty"`
}

// NewValidateAmountHandler returns an HTTP handler that scrubs and checks
// an amount without touching the device API.
// @Summary Validate amount
// @Tags balance
// @Accept json
// @Produce json
// @Param request body handlers.ValidateAmountRequest true "Raw amount"
// @Success 200 {object} handlers.ValidateAmountResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /amount/validate [post]
func NewValidateAmountHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ValidateAmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apierrors.Wrap(apierrors.ValidationError, "invalid request body", err))
			return
		}

		sanitized := validation.Sanitize(req.Amount)
		res := validation.Validate(sanitized)

		writeJSON(w, http.StatusOK, ValidateAmountResponse{
			Sanitized: sanitized,
			IsValid:   res.IsValid,
			Error:     res.Error,
		})
	}
}

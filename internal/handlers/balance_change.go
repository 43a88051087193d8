package handlers

//go:generate mockgen -source=balance_change.go -destination=balance_change_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-device-balance/internal/apierrors"
	"github.com/sbilibin2017/gw-device-balance/internal/logger"
	"github.com/sbilibin2017/gw-device-balance/internal/models"
	"github.com/sbilibin2017/gw-device-balance/internal/validation"
)

// BalanceOperator defines the method needed by the deposit and withdraw handlers.
type BalanceOperator interface {
	Apply(ctx context.Context, op models.BalanceOperation) (models.BalanceResponse, error)
}

// BalanceChangeRequest is the JSON body of deposit and withdraw.
// swagger:model BalanceChangeRequest
type BalanceChangeRequest struct {
	// Amount as typed by the operator, at most 2 decimals
	// required: true
	// example: 50.00
	Amount string `json:"amount" validate:"max=64"`
}

// BalanceChangeResponse is returned after a successful deposit or withdraw.
// swagger:model BalanceChangeResponse
type BalanceChangeResponse struct {
	// example: Balance updated
	Message string `json:"message"`

	// example: deposit
	Operation models.OperationKind `json:"operation"`

	// Balance confirmed by the device API
	Balance models.BalanceResponse `json:"balance"`

	// example: 150.00 KES
	Formatted string `json:"formatted"`
}

// NewDepositHandler returns an HTTP handler adding funds to a place.
// @Summary Deposit to a place
// @Description Validates the amount, re-reads the place balance and writes balance + amount.
// @Tags balance
// @Accept json
// @Produce json
// @Param deviceID path int true "Device ID"
// @Param placeID path int true "Place number"
// @Param request body handlers.BalanceChangeRequest true "Deposit request"
// @Success 200 {object} handlers.BalanceChangeResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 404 {object} handlers.ErrorResponse "Device or place not found"
// @Failure 502 {object} handlers.ErrorResponse "Upstream unavailable"
// @Router /devices/{deviceID}/places/{placeID}/deposit [post]
func NewDepositHandler(svc BalanceOperator, v *validator.Validate) http.HandlerFunc {
	return newBalanceChangeHandler(models.Deposit, svc, v)
}

// NewWithdrawHandler returns an HTTP handler taking funds from a place.
// @Summary Withdraw from a place
// @Description Validates the amount, re-reads the place balance and writes balance - amount. A withdrawal may not push a non-negative balance below zero.
// @Tags balance
// @Accept json
// @Produce json
// @Param deviceID path int true "Device ID"
// @Param placeID path int true "Place number"
// @Param request body handlers.BalanceChangeRequest true "Withdraw request"
// @Success 200 {object} handlers.BalanceChangeResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 404 {object} handlers.ErrorResponse "Device or place not found"
// @Failure 409 {object} handlers.ErrorResponse "Insufficient funds"
// @Failure 502 {object} handlers.ErrorResponse "Upstream unavailable"
// @Router /devices/{deviceID}/places/{placeID}/withdraw [post]
func NewWithdrawHandler(svc BalanceOperator, v *validator.Validate) http.HandlerFunc {
	return newBalanceChangeHandler(models.Withdraw, svc, v)
}

func newBalanceChangeHandler(kind models.OperationKind, svc BalanceOperator, v *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := parsePlaceParams(r, v)
		if err != nil {
			writeError(w, err)
			return
		}

		var req BalanceChangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode balance request", "operation", kind, "error", err)
			writeError(w, apierrors.Wrap(apierrors.ValidationError, "invalid request body", err))
			return
		}
		if err := v.Struct(req); err != nil {
			writeError(w, apierrors.Wrap(apierrors.ValidationError, "invalid request body", err))
			return
		}

		// Invalid amounts never reach the device API.
		amount, err := validation.ParseAmount(req.Amount)
		if err != nil {
			logger.Log.Warnw("invalid amount", "operation", kind, "amount", req.Amount, "error", err)
			writeError(w, err)
			return
		}

		op := models.BalanceOperation{
			Kind:     kind,
			Amount:   amount,
			DeviceID: params.DeviceID,
			PlaceID:  params.PlaceID,
		}

		resp, err := svc.Apply(r.Context(), op)
		if err != nil {
			logger.Log.Errorw("balance operation failed",
				"operation", op.Kind, "deviceID", op.DeviceID, "placeID", op.PlaceID,
				"amount", op.Amount, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BalanceChangeResponse{
			Message:   "Balance updated",
			Operation: op.Kind,
			Balance:   resp,
			Formatted: validation.FormatAmount(resp.Balances, resp.Currency),
		})
	}
}

package services

//go:generate mockgen -source=balance.go -destination=balance_mock.go -package=services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-device-balance/internal/apierrors"
	"github.com/sbilibin2017/gw-device-balance/internal/logger"
	"github.com/sbilibin2017/gw-device-balance/internal/models"
)

// DeviceReader fetches a single device with its places.
type DeviceReader interface {
	GetDevice(ctx context.Context, deviceID int) (models.Device, error) // Returns the device or a DeviceNotFound/transport error
}

// BalanceWriter overwrites the balance of a place.
type BalanceWriter interface {
	UpdateBalance(ctx context.Context, deviceID, placeID int, newBalance decimal.Decimal) (models.BalanceResponse, error) // Returns the persisted state
}

// BalanceService composes deposits and withdrawals out of a fresh read
// followed by a full balance overwrite.
//
// There is no concurrency token between the read and the write: two
// operations racing on the same place may lose an update (last write wins).
type BalanceService struct {
	reader DeviceReader
	writer BalanceWriter
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(reader DeviceReader, writer BalanceWriter) *BalanceService {
	return &BalanceService{
		reader: reader,
		writer: writer,
	}
}

// Deposit adds amount to the current balance of a place.
// amount must already be validated.
func (s *BalanceService) Deposit(ctx context.Context, deviceID, placeID int, amount decimal.Decimal) (models.BalanceResponse, error) {
	place, err := s.currentPlace(ctx, deviceID, placeID)
	if err != nil {
		return models.BalanceResponse{}, err
	}

	newBalance := place.Balances.Add(amount)

	logger.Log.Infow("depositing",
		"deviceID", deviceID, "placeID", placeID,
		"current", place.Balances, "amount", amount, "new", newBalance)

	return s.SetBalance(ctx, deviceID, placeID, newBalance)
}

// Withdraw subtracts amount from the current balance of a place.
// A withdrawal that would take a non-negative balance below zero fails
// with InsufficientFunds; a balance that is already negative may go
// further down.
func (s *BalanceService) Withdraw(ctx context.Context, deviceID, placeID int, amount decimal.Decimal) (models.BalanceResponse, error) {
	place, err := s.currentPlace(ctx, deviceID, placeID)
	if err != nil {
		return models.BalanceResponse{}, err
	}

	newBalance := place.Balances.Sub(amount)

	if newBalance.IsNegative() && !place.Balances.IsNegative() {
		logger.Log.Warnw("insufficient funds",
			"deviceID", deviceID, "placeID", placeID,
			"current", place.Balances, "amount", amount)
		return models.BalanceResponse{}, apierrors.New(
			apierrors.InsufficientFunds,
			"Insufficient funds for withdrawal",
			map[string]any{"currentBalance": place.Balances, "requestedAmount": amount},
		)
	}

	logger.Log.Infow("withdrawing",
		"deviceID", deviceID, "placeID", placeID,
		"current", place.Balances, "amount", amount, "new", newBalance)

	return s.SetBalance(ctx, deviceID, placeID, newBalance)
}

// Apply dispatches a balance operation by its kind.
func (s *BalanceService) Apply(ctx context.Context, op models.BalanceOperation) (models.BalanceResponse, error) {
	switch op.Kind {
	case models.Deposit:
		return s.Deposit(ctx, op.DeviceID, op.PlaceID, op.Amount)
	case models.Withdraw:
		return s.Withdraw(ctx, op.DeviceID, op.PlaceID, op.Amount)
	default:
		return models.BalanceResponse{}, apierrors.New(
			apierrors.ValidationError,
			fmt.Sprintf("unknown operation %q", op.Kind),
			op,
		)
	}
}

// SetBalance overwrites the balance of a place and returns the balance the
// server confirmed. Write failures are returned unmodified.
func (s *BalanceService) SetBalance(ctx context.Context, deviceID, placeID int, newBalance decimal.Decimal) (models.BalanceResponse, error) {
	resp, err := s.writer.UpdateBalance(ctx, deviceID, placeID, newBalance)
	if err != nil {
		logger.Log.Errorw("failed to write balance",
			"deviceID", deviceID, "placeID", placeID, "balance", newBalance, "error", err)
		return models.BalanceResponse{}, err
	}
	return resp, nil
}

func (s *BalanceService) currentPlace(ctx context.Context, deviceID, placeID int) (models.Place, error) {
	device, err := s.reader.GetDevice(ctx, deviceID)
	if err != nil {
		logger.Log.Errorw("failed to read device before balance change", "deviceID", deviceID, "error", err)
		return models.Place{}, err
	}

	place, ok := device.FindPlace(placeID)
	if !ok {
		logger.Log.Warnw("place not found", "deviceID", deviceID, "placeID", placeID)
		return models.Place{}, apierrors.New(
			apierrors.PlaceNotFound,
			"Place not found in device",
			map[string]any{"deviceId": deviceID, "placeId": placeID},
		)
	}
	return place, nil
}

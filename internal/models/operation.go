package models

import "github.com/shopspring/decimal"

// OperationKind selects the balance mutation.
type OperationKind string

const (
	Deposit  OperationKind = "deposit"
	Withdraw OperationKind = "withdraw"
)

// BalanceOperation is created when an operator submits an amount and is
// consumed right away. It is never stored.
type BalanceOperation struct {
	Kind     OperationKind
	Amount   decimal.Decimal
	DeviceID int
	PlaceID  int
}

// ValidationResult is the outcome of one amount validation.
// swagger:model ValidationResult
type ValidationResult struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}

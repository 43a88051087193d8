package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// BalanceUpdateRequest is the body of the place update call.
type BalanceUpdateRequest struct {
	Balances decimal.Decimal `json:"balances"`
}

// MarshalJSON encodes the balance as a bare JSON number.
func (r BalanceUpdateRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Balances json.Number `json:"balances"`
	}{
		Balances: json.Number(r.Balances.String()),
	})
}

// BalanceResponse is the authoritative post-write state of a place.
// swagger:model BalanceResponse
type BalanceResponse struct {
	// example: 150.00
	Balances decimal.Decimal `json:"balances"`
	// example: KES
	Currency string `json:"currency"`
	// example: 1
	DeviceID int `json:"device_id"`
	// example: 2
	Place int `json:"place"`
}

// TimeResponse is the upstream server clock.
// swagger:model TimeResponse
type TimeResponse struct {
	Timestamp float64 `json:"timestamp"`
}

package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Place is a single balance-bearing slot of a device.
// Identity is the (DeviceID, Place) pair.
type Place struct {
	DeviceID int             `json:"device_id"`
	Place    int             `json:"place"`
	Currency string          `json:"currency"`
	Balances decimal.Decimal `json:"balances"`
}

// Device owns its places; they are always delivered embedded in it.
type Device struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Places    []Place `json:"places"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// FindPlace returns the place with the given number.
func (d Device) FindPlace(placeID int) (Place, bool) {
	for _, p := range d.Places {
		if p.Place == placeID {
			return p, true
		}
	}
	return Place{}, false
}

// Player is the flattened display record of a place.
// swagger:model Player
type Player struct {
	// example: 1-2
	ID string `json:"id"`
	// example: Место 2
	Name string `json:"name"`
	// example: 100.00
	Balance decimal.Decimal `json:"balance"`
	// example: 1
	DeviceID string `json:"device_id"`
	// example: KES
	Currency string `json:"currency"`
}

// PlayerID formats the display id of a place.
func PlayerID(deviceID, place int) string {
	return fmt.Sprintf("%d-%d", deviceID, place)
}

// PlayerName formats the display name of a place.
func PlayerName(place int) string {
	return fmt.Sprintf("Место %d", place)
}

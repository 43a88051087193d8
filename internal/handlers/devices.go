package handlers

//go:generate mockgen -source=devices.go -destination=devices_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-device-balance/internal/models"
)

// DevicesLister defines the methods needed by the device list handler.
type DevicesLister interface {
	GetDevices(ctx context.Context) ([]models.Device, error)
}

// DeviceGetter defines the methods needed by the single device handler.
type DeviceGetter interface {
	GetDevice(ctx context.Context, deviceID int) (models.Device, error)
}

// PlayersGetter defines the methods needed by the players handler.
type PlayersGetter interface {
	GetPlayers(ctx context.Context, deviceID int) ([]models.Player, error)
}

// NewGetDevicesHandler returns an HTTP handler listing every device.
// @Summary List devices
// @Description Fetches all devices with their places from the device API. Always a full refetch.
// @Tags devices
// @Produce json
// @Success 200 {array} models.Device
// @Failure 502 {object} handlers.ErrorResponse "Upstream unavailable"
// @Failure 504 {object} handlers.ErrorResponse "Upstream timeout"
// @Router /devices [get]
func NewGetDevicesHandler(svc DevicesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		devices, err := svc.GetDevices(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if devices == nil {
			devices = []models.Device{}
		}
		writeJSON(w, http.StatusOK, devices)
	}
}

// NewGetDeviceHandler returns an HTTP handler for one device.
// @Summary Get device
// @Tags devices
// @Produce json
// @Param deviceID path int true "Device ID"
// @Success 200 {object} models.Device
// @Failure 400 {object} handlers.ErrorResponse "Invalid device id"
// @Failure 404 {object} handlers.ErrorResponse "Device not found"
// @Failure 502 {object} handlers.ErrorResponse "Upstream unavailable"
// @Router /devices/{deviceID} [get]
func NewGetDeviceHandler(svc DeviceGetter, v *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID, err := parseDeviceID(r, v)
		if err != nil {
			writeError(w, err)
			return
		}

		device, err := svc.GetDevice(r.Context(), deviceID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, device)
	}
}

// NewGetPlayersHandler returns an HTTP handler listing the players of a device.
// @Summary List players of a device
// @Description Places of the device projected into player records, in device order.
// @Tags devices
// @Produce json
// @Param deviceID path int true "Device ID"
// @Success 200 {array} models.Player
// @Failure 400 {object} handlers.ErrorResponse "Invalid device id"
// @Failure 404 {object} handlers.ErrorResponse "Device not found"
// @Failure 502 {object} handlers.ErrorResponse "Upstream unavailable"
// @Router /devices/{deviceID}/players [get]
func NewGetPlayersHandler(svc PlayersGetter, v *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID, err := parseDeviceID(r, v)
		if err != nil {
			writeError(w, err)
			return
		}

		players, err := svc.GetPlayers(r.Context(), deviceID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

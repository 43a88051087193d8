package services

//go:generate mockgen -source=device.go -destination=device_mock.go -package=services

import (
	"context"
	"strconv"

	"github.com/sbilibin2017/gw-device-balance/internal/logger"
	"github.com/sbilibin2017/gw-device-balance/internal/models"
)

// DeviceLister reads devices and the server clock.
type DeviceLister interface {
	GetDevices(ctx context.Context) ([]models.Device, error)            // Returns every device with its places
	GetDevice(ctx context.Context, deviceID int) (models.Device, error) // Returns one device
	GetTime(ctx context.Context) (models.TimeResponse, error)           // Returns the server clock
}

// DeviceService serves device and player listings. Every call is a full
// refetch; nothing is cached between calls.
type DeviceService struct {
	lister DeviceLister
}

// NewDeviceService creates a new DeviceService.
func NewDeviceService(lister DeviceLister) *DeviceService {
	return &DeviceService{lister: lister}
}

// GetDevices returns all devices.
func (s *DeviceService) GetDevices(ctx context.Context) ([]models.Device, error) {
	devices, err := s.lister.GetDevices(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get devices", "error", err)
		return nil, err
	}
	return devices, nil
}

// GetDevice returns one device.
func (s *DeviceService) GetDevice(ctx context.Context, deviceID int) (models.Device, error) {
	device, err := s.lister.GetDevice(ctx, deviceID)
	if err != nil {
		logger.Log.Errorw("failed to get device", "deviceID", deviceID, "error", err)
		return models.Device{}, err
	}
	return device, nil
}

// GetPlayers returns the places of a device as display records.
func (s *DeviceService) GetPlayers(ctx context.Context, deviceID int) ([]models.Player, error) {
	device, err := s.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	return ConvertPlacesToPlayers(device), nil
}

// GetServerTime returns the upstream server clock.
func (s *DeviceService) GetServerTime(ctx context.Context) (models.TimeResponse, error) {
	ts, err := s.lister.GetTime(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get server time", "error", err)
		return models.TimeResponse{}, err
	}
	return ts, nil
}

// ConvertPlacesToPlayers projects the places of a device, in order, into
// player records.
func ConvertPlacesToPlayers(device models.Device) []models.Player {
	players := make([]models.Player, 0, len(device.Places))
	for _, p := range device.Places {
		players = append(players, models.Player{
			ID:       models.PlayerID(device.ID, p.Place),
			Name:     models.PlayerName(p.Place),
			Balance:  p.Balances,
			DeviceID: strconv.Itoa(device.ID),
			Currency: p.Currency,
		})
	}
	return players
}

package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-device-balance/internal/apierrors"
	"github.com/sbilibin2017/gw-device-balance/internal/logger"
	"github.com/sbilibin2017/gw-device-balance/internal/models"
)

// DefaultBaseURL is the device management API root.
const DefaultBaseURL = "https://dev-space.su/api/v1/a"

// DeviceAPIFacade talks to the remote device management API over REST/JSON.
// Failures are returned as *apierrors.APIError and never retried.
type DeviceAPIFacade struct {
	client *resty.Client
}

// NewDeviceAPIFacade creates a facade for the API rooted at baseURL.
// A zero timeout leaves requests bounded only by their context.
func NewDeviceAPIFacade(baseURL string, timeout time.Duration) *DeviceAPIFacade {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetLogger(logger.Log).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &DeviceAPIFacade{client: client}
}

// GetDevices fetches every device with its places.
func (f *DeviceAPIFacade) GetDevices(ctx context.Context) ([]models.Device, error) {
	var devices []models.Device
	if err := f.do(ctx, f.client.R(), http.MethodGet, "/devices/", "", &devices); err != nil {
		logger.Log.Errorw("failed to fetch devices", "error", err)
		return nil, err
	}
	return devices, nil
}

// GetDevice fetches one device. A 404 is reported as DeviceNotFound.
func (f *DeviceAPIFacade) GetDevice(ctx context.Context, deviceID int) (models.Device, error) {
	var device models.Device
	req := f.client.R().SetPathParam("deviceID", strconv.Itoa(deviceID))
	if err := f.do(ctx, req, http.MethodGet, "/devices/{deviceID}/", apierrors.DeviceNotFound, &device); err != nil {
		logger.Log.Errorw("failed to fetch device", "deviceID", deviceID, "error", err)
		return models.Device{}, err
	}
	return device, nil
}

// UpdateBalance overwrites the balance of a place and returns the state
// the server persisted.
func (f *DeviceAPIFacade) UpdateBalance(
	ctx context.Context,
	deviceID, placeID int,
	newBalance decimal.Decimal,
) (models.BalanceResponse, error) {
	var resp models.BalanceResponse
	req := f.client.R().
		SetPathParams(map[string]string{
			"deviceID": strconv.Itoa(deviceID),
			"placeID":  strconv.Itoa(placeID),
		}).
		SetBody(models.BalanceUpdateRequest{Balances: newBalance})

	if err := f.do(ctx, req, http.MethodPost, "/devices/{deviceID}/place/{placeID}/update", apierrors.PlaceNotFound, &resp); err != nil {
		logger.Log.Errorw("failed to update balance",
			"deviceID", deviceID, "placeID", placeID, "balance", newBalance, "error", err)
		return models.BalanceResponse{}, err
	}
	return resp, nil
}

// GetTime fetches the server clock.
func (f *DeviceAPIFacade) GetTime(ctx context.Context) (models.TimeResponse, error) {
	var resp models.TimeResponse
	if err := f.do(ctx, f.client.R(), http.MethodGet, "/time", "", &resp); err != nil {
		logger.Log.Errorw("failed to fetch server time", "error", err)
		return models.TimeResponse{}, err
	}
	return resp, nil
}

func (f *DeviceAPIFacade) do(
	ctx context.Context,
	req *resty.Request,
	method, path string,
	notFound apierrors.Kind,
	result any,
) error {
	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return apierrors.FromTransport(err)
	}

	if !resp.IsSuccess() {
		return apierrors.FromStatus(resp.StatusCode(), errorBody(resp.Body()), notFound)
	}

	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return apierrors.Wrap(apierrors.ServerError, "invalid response body", err)
	}
	return nil
}

// errorBody parses an error reply best-effort; anything that is not a JSON
// object becomes an empty one.
func errorBody(raw []byte) map[string]any {
	body := map[string]any{}
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return map[string]any{}
	}
	return body
}

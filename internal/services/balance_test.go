package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-device-balance/internal/apierrors"
	"github.com/sbilibin2017/gw-device-balance/internal/models"
)

// decimalEq matches a decimal by value regardless of its exponent.
type decimalEq struct{ want decimal.Decimal }

func decEq(s string) gomock.Matcher { return decimalEq{want: decimal.RequireFromString(s)} }

func (m decimalEq) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string { return fmt.Sprintf("is decimal %s", m.want) }

func deviceWithBalance(balance string) models.Device {
	return models.Device{
		ID:   1,
		Name: "Table A",
		Places: []models.Place{
			{DeviceID: 1, Place: 1, Currency: "KES", Balances: decimal.Zero},
			{DeviceID: 1, Place: 2, Currency: "KES", Balances: decimal.RequireFromString(balance)},
		},
	}
}

func TestBalanceService_Deposit(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockDeviceReader(ctrl)
	writer := NewMockBalanceWriter(ctrl)

	confirmed := models.BalanceResponse{Balances: decimal.RequireFromString("150.00"), Currency: "KES", DeviceID: 1, Place: 2}

	gomock.InOrder(
		reader.EXPECT().GetDevice(ctx, 1).Return(deviceWithBalance("100.00"), nil),
		writer.EXPECT().UpdateBalance(ctx, 1, 2, decEq("150.00")).Return(confirmed, nil),
	)

	svc := NewBalanceService(reader, writer)
	resp, err := svc.Deposit(ctx, 1, 2, decimal.RequireFromString("50.00"))

	require.NoError(t, err)
	assert.Equal(t, confirmed, resp)
}

func TestBalanceService_Deposit_ReturnsServerConfirmedBalance(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockDeviceReader(ctrl)
	writer := NewMockBalanceWriter(ctrl)

	// The server may persist something other than what we computed.
	serverSide := models.BalanceResponse{Balances: decimal.RequireFromString("149.99"), Currency: "KES", DeviceID: 1, Place: 2}

	reader.EXPECT().GetDevice(ctx, 1).Return(deviceWithBalance("100.00"), nil)
	writer.EXPECT().UpdateBalance(ctx, 1, 2, decEq("150")).Return(serverSide, nil)

	resp, err := NewBalanceService(reader, writer).Deposit(ctx, 1, 2, decimal.NewFromInt(50))

	require.NoError(t, err)
	assert.True(t, resp.Balances.Equal(decimal.RequireFromString("149.99")))
}

func TestBalanceService_Withdraw(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		current   string
		amount    string
		wantWrite string
		wantKind  apierrors.Kind
	}{
		{name: "enough funds", current: "100.00", amount: "30.00", wantWrite: "70.00"},
		{name: "down to zero", current: "30.00", amount: "30.00", wantWrite: "0"},
		{name: "blocked new overdraft", current: "30.00", amount: "50.00", wantKind: apierrors.InsufficientFunds},
		{name: "blocked from zero", current: "0", amount: "0.01", wantKind: apierrors.InsufficientFunds},
		{name: "already overdrawn proceeds", current: "-10.00", amount: "5.00", wantWrite: "-15.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockDeviceReader(ctrl)
			writer := NewMockBalanceWriter(ctrl)

			reader.EXPECT().GetDevice(ctx, 1).Return(deviceWithBalance(tt.current), nil)
			if tt.wantWrite != "" {
				writer.EXPECT().UpdateBalance(ctx, 1, 2, decEq(tt.wantWrite)).
					Return(models.BalanceResponse{Balances: decimal.RequireFromString(tt.wantWrite), DeviceID: 1, Place: 2}, nil)
			}

			svc := NewBalanceService(reader, writer)
			resp, err := svc.Withdraw(ctx, 1, 2, decimal.RequireFromString(tt.amount))

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apierrors.KindOf(err))
				assert.Equal(t, models.BalanceResponse{}, resp)
				return
			}
			require.NoError(t, err)
			assert.True(t, resp.Balances.Equal(decimal.RequireFromString(tt.wantWrite)))
		})
	}
}

func TestBalanceService_PlaceNotFound(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockDeviceReader(ctrl)
	writer := NewMockBalanceWriter(ctrl)

	reader.EXPECT().GetDevice(ctx, 1).Return(deviceWithBalance("100.00"), nil).Times(2)

	svc := NewBalanceService(reader, writer)

	_, err := svc.Deposit(ctx, 1, 99, decimal.NewFromInt(10))
	assert.True(t, errors.Is(err, apierrors.ErrPlaceNotFound))

	_, err = svc.Withdraw(ctx, 1, 99, decimal.NewFromInt(10))
	assert.True(t, errors.Is(err, apierrors.ErrPlaceNotFound))
}

func TestBalanceService_ReadErrorAbortsWithoutWrite(t *testing.T) {
	ctx := context.Background()

	readErrors := []error{
		apierrors.New(apierrors.DeviceNotFound, "HTTP 404", nil),
		apierrors.Wrap(apierrors.NetworkError, "network connection failed", errors.New("connection refused")),
		apierrors.New(apierrors.ServerError, "HTTP 500", nil),
	}

	for _, readErr := range readErrors {
		t.Run(apierrors.KindOf(readErr).String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockDeviceReader(ctrl)
			writer := NewMockBalanceWriter(ctrl)

			reader.EXPECT().GetDevice(ctx, 1).Return(models.Device{}, readErr).Times(2)

			svc := NewBalanceService(reader, writer)

			_, err := svc.Deposit(ctx, 1, 2, decimal.NewFromInt(10))
			assert.Equal(t, readErr, err)

			_, err = svc.Withdraw(ctx, 1, 2, decimal.NewFromInt(10))
			assert.Equal(t, readErr, err)
		})
	}
}

func TestBalanceService_WriteErrorSurfacedUnmodified(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockDeviceReader(ctrl)
	writer := NewMockBalanceWriter(ctrl)

	writeErr := apierrors.New(apierrors.ServerError, "HTTP 503", map[string]any{})

	reader.EXPECT().GetDevice(ctx, 1).Return(deviceWithBalance("100.00"), nil)
	writer.EXPECT().UpdateBalance(ctx, 1, 2, decEq("110")).Return(models.BalanceResponse{}, writeErr).Times(1)

	_, err := NewBalanceService(reader, writer).Deposit(ctx, 1, 2, decimal.NewFromInt(10))
	assert.Same(t, writeErr, err)
}

func TestBalanceService_Apply(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockDeviceReader(ctrl)
	writer := NewMockBalanceWriter(ctrl)

	reader.EXPECT().GetDevice(ctx, 1).Return(deviceWithBalance("100"), nil).Times(2)
	writer.EXPECT().UpdateBalance(ctx, 1, 2, decEq("125")).Return(models.BalanceResponse{Balances: decimal.NewFromInt(125)}, nil)
	writer.EXPECT().UpdateBalance(ctx, 1, 2, decEq("75")).Return(models.BalanceResponse{Balances: decimal.NewFromInt(75)}, nil)

	svc := NewBalanceService(reader, writer)

	resp, err := svc.Apply(ctx, models.BalanceOperation{Kind: models.Deposit, Amount: decimal.NewFromInt(25), DeviceID: 1, PlaceID: 2})
	require.NoError(t, err)
	assert.True(t, resp.Balances.Equal(decimal.NewFromInt(125)))

	resp, err = svc.Apply(ctx, models.BalanceOperation{Kind: models.Withdraw, Amount: decimal.NewFromInt(25), DeviceID: 1, PlaceID: 2})
	require.NoError(t, err)
	assert.True(t, resp.Balances.Equal(decimal.NewFromInt(75)))

	_, err = svc.Apply(ctx, models.BalanceOperation{Kind: "transfer", DeviceID: 1, PlaceID: 2})
	assert.Equal(t, apierrors.ValidationError, apierrors.KindOf(err))
}

func TestBalanceService_SetBalance(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockBalanceWriter(ctrl)
	writer.EXPECT().UpdateBalance(ctx, 3, 4, decEq("42.42")).
		Return(models.BalanceResponse{Balances: decimal.RequireFromString("42.42"), DeviceID: 3, Place: 4}, nil)

	svc := NewBalanceService(nil, writer)
	resp, err := svc.SetBalance(ctx, 3, 4, decimal.RequireFromString("42.42"))

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Place)
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmountHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedCode  int
		wantSanitized string
		wantValid     bool
		wantError     string
	}{
		{name: "valid", body: `{"amount":"50.00"}`, expectedCode: http.StatusOK, wantSanitized: "50.00", wantValid: true},
		{name: "scrubbed", body: `{"amount":"00150,5 KES"}`, expectedCode: http.StatusOK, wantSanitized: "1505", wantValid: true},
		{name: "too many decimals", body: `{"amount":"1.234"}`, expectedCode: http.StatusOK, wantSanitized: "1.234", wantError: "at most 2 decimal places"},
		{name: "empty", body: `{"amount":""}`, expectedCode: http.StatusOK, wantSanitized: "", wantError: "amount required"},
		{name: "zero", body: `{"amount":"000"}`, expectedCode: http.StatusOK, wantSanitized: "0", wantError: "must be positive"},
		{name: "bad json", body: `{`, expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/amount/validate", bytes.NewReader([]byte(tt.body)))
			NewValidateAmountHandler().ServeHTTP(rr, req)

			require.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}

			var resp ValidateAmountResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.wantSanitized, resp.Sanitized)
			assert.Equal(t, tt.wantValid, resp.IsValid)
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

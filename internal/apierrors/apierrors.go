package apierrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// Kind is the closed set of error categories returned by the balance client.
type Kind string

const (
	InsufficientFunds Kind = "INSUFFICIENT_FUNDS"
	InvalidAmount     Kind = "INVALID_AMOUNT"
	PlaceNotFound     Kind = "PLACE_NOT_FOUND"
	DeviceNotFound    Kind = "DEVICE_NOT_FOUND"
	NetworkError      Kind = "NETWORK_ERROR"
	ServerError       Kind = "SERVER_ERROR"
	TimeoutError      Kind = "TIMEOUT_ERROR"
	Unauthorized      Kind = "UNAUTHORIZED"
	ValidationError   Kind = "VALIDATION_ERROR"
	UnknownError      Kind = "UNKNOWN_ERROR"
)

var kinds = map[Kind]struct{}{
	InsufficientFunds: {},
	InvalidAmount:     {},
	PlaceNotFound:     {},
	DeviceNotFound:    {},
	NetworkError:      {},
	ServerError:       {},
	TimeoutError:      {},
	Unauthorized:      {},
	ValidationError:   {},
	UnknownError:      {},
}

// String returns the wire code of the kind.
func (k Kind) String() string {
	return string(k)
}

// ParseKind maps a wire code back to a Kind.
func ParseKind(code string) (Kind, bool) {
	k := Kind(code)
	_, ok := kinds[k]
	return k, ok
}

// Sentinels for errors.Is checks against a kind.
var (
	ErrInsufficientFunds = &APIError{Kind: InsufficientFunds}
	ErrInvalidAmount     = &APIError{Kind: InvalidAmount}
	ErrPlaceNotFound     = &APIError{Kind: PlaceNotFound}
	ErrDeviceNotFound    = &APIError{Kind: DeviceNotFound}
)

// APIError is the only error representation that crosses from the
// balance client into the gateway.
type APIError struct {
	Kind    Kind
	Message string
	Details any
	Err     error
}

// New creates an APIError of the given kind.
func New(kind Kind, message string, details any) *APIError {
	return &APIError{Kind: kind, Message: message, Details: details}
}

// Wrap creates an APIError of the given kind around a cause.
func Wrap(kind Kind, message string, err error) *APIError {
	return &APIError{Kind: kind, Message: message, Details: err, Err: err}
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an APIError of the same kind.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf classifies an arbitrary error. A nil error has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return TimeoutError
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return TimeoutError
	}

	var (
		urlErr *url.Error
		opErr  *net.OpError
		dnsErr *net.DNSError
	)
	if errors.As(err, &urlErr) || errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return NetworkError
	}

	return UnknownError
}

// FromTransport converts a failure of the transport itself into an APIError.
func FromTransport(err error) *APIError {
	if KindOf(err) == TimeoutError {
		return Wrap(TimeoutError, "request timed out", err)
	}
	return Wrap(NetworkError, "network connection failed", err)
}

// FromStatus converts a non-2xx reply into an APIError. body is the
// best-effort parsed JSON reply; notFound is the kind reported for 404.
func FromStatus(status int, body map[string]any, notFound Kind) *APIError {
	message := fmt.Sprintf("HTTP %d", status)
	if m, ok := body["message"].(string); ok && m != "" {
		message = m
	}

	if code, ok := body["code"].(string); ok {
		if k, known := ParseKind(code); known {
			return New(k, message, body)
		}
	}

	var kind Kind
	switch {
	case status == http.StatusNotFound && notFound != "":
		kind = notFound
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		kind = Unauthorized
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		kind = ValidationError
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		kind = TimeoutError
	default:
		kind = ServerError
	}

	return New(kind, message, body)
}

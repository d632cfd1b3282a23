package bullsbears

import (
	"errors"
	"fmt"
)

var (
	// ErrClientNotReady is an exported constant or variable used by the API client.
	ErrClientNotReady = errors.New("client not initialized")
	// ErrAmountInvalid is an exported constant or variable used by the API client.
	ErrAmountInvalid = errors.New("amount must be greater than zero")
	// ErrEmailRequired is an exported constant or variable used by the API client.
	ErrEmailRequired = errors.New("email is required")
	// ErrEmailInvalid is an exported constant or variable used by the API client.
	ErrEmailInvalid = errors.New("invalid email address")
	// ErrPasswordRequired is an exported constant or variable used by the API client.
	ErrPasswordRequired = errors.New("password is required")
	// ErrPasswordTooShort is an exported constant or variable used by the API client.
	ErrPasswordTooShort = errors.New("password too short")
	// ErrPasswordMismatch is an exported constant or variable used by the API client.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrNameRequired is an exported constant or variable used by the API client.
	ErrNameRequired = errors.New("name is required")
	// ErrMobileInvalid is an exported constant or variable used by the API client.
	ErrMobileInvalid = errors.New("invalid mobile number")
	// ErrTermsNotAccepted is an exported constant or variable used by the API client.
	ErrTermsNotAccepted = errors.New("terms must be accepted")
	// ErrTradeSymbolRequired is an exported constant or variable used by the API client.
	ErrTradeSymbolRequired = errors.New("trade symbol is required")
	// ErrAssetIDRequired is an exported constant or variable used by the API client.
	ErrAssetIDRequired = errors.New("asset id is required")
	// ErrIDRequired is an exported constant or variable used by the API client.
	ErrIDRequired = errors.New("record id is required")
	// ErrActionInvalid is an exported constant or variable used by the API client.
	ErrActionInvalid = errors.New("approval action must be approve or reject")
)

// APIError is the single classified error type raised by the envelope client.
// Status carries the HTTP status code, or 0 for connectivity failures that
// never produced a response. Body holds the parsed response envelope when the
// backend returned one, and is nil otherwise.
//
// APIError instances are intended to be inspected via [errors.As] and then
// treated as immutable.
type APIError struct {
	Status  int
	Message string
	Body    *Envelope
}

// Error describes the error operation and its observable behavior.
//
// Error does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *APIError) Error() string {
	if e == nil {
		return "api error"
	}
	if e.Status == 0 {
		return fmt.Sprintf("api: %s", e.Message)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// IsConnectivity reports whether the error represents a transport-level
// failure (the request never reached the backend).
func (e *APIError) IsConnectivity() bool {
	return e != nil && e.Status == 0
}

// AsAPIError unwraps err into an [*APIError] when the chain contains one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

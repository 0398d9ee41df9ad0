package weatherlink

import "errors"

var (
	// ErrInvalidResponse is returned when the API answers with a payload that
	// is not a JSON object carrying a "sensors" key.
	ErrInvalidResponse = errors.New("invalid station response")

	// ErrTimeout is returned when a request exceeds its deadline.
	ErrTimeout = errors.New("station request timed out")

	// ErrTransport wraps every other network or HTTP-level failure.
	ErrTransport = errors.New("station request failed")
)

var (
	errRateLimited   = errors.New("rate limited")
	errServerError   = errors.New("server error")
	errUnexpected    = errors.New("unexpected status code")
	errCircuitOpen   = errors.New("circuit breaker open")
	errNoHTTPClient  = errors.New("http client not configured")
	errInvalidConfig = errors.New("invalid backoff configuration")
)

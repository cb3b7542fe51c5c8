package api

import (
	"errors"
	"fmt"
)

// Error taxonomy for gateway calls. Callers branch with errors.Is/errors.As:
//
//   - ErrUnauthenticated: no credential held, refused before any network I/O.
//   - ErrAuthRejected: the service answered 401; the credential store has
//     already been cleared and the caller must route to re-authentication.
//   - RequestFailedError: any other non-2xx response, with the best-effort
//     server message.
//   - MalformedResponseError: a 2xx response whose body does not satisfy the
//     report data model. Not retryable.
//   - NetworkError: transport-level failure, no response received.
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrAuthRejected    = errors.New("credential rejected by service")
)

// RequestFailedError carries the server-provided failure message for a
// non-2xx, non-401 response.
type RequestFailedError struct {
	StatusCode int
	Message    string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
}

// MalformedResponseError marks a successful response that failed validation
// against the report data model.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed service response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// NetworkError marks a transport failure where no response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UserMessage renders a gateway error as the single human-readable line shown
// to the user. ErrAuthRejected is handled upstream and never reaches here in
// normal flow, but gets a sane rendering anyway.
func UserMessage(err error) string {
	var reqErr *RequestFailedError
	var malformed *MalformedResponseError
	var netErr *NetworkError
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return "You are not logged in. Run 'scout login' first."
	case errors.Is(err, ErrAuthRejected):
		return "Your session has expired. Run 'scout login' to continue."
	case errors.As(err, &reqErr):
		return reqErr.Message
	case errors.As(err, &malformed):
		return "The service returned an invalid report. Please try again later."
	case errors.As(err, &netErr):
		return "Could not reach the PharmaScout service. Check your connection."
	default:
		return "Failed to generate report. Please try again."
	}
}

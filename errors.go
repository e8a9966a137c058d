package textlink

import (
	"errors"
	"fmt"

	"github.com/textlink-sms/textlink-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMalformedResponse is returned when a response body cannot be
	// decoded as JSON. It is the only error-shaped outcome of the SDK;
	// everything else flows through the result value.
	ErrMalformedResponse = errors.New("malformed API response")
)

// Validation messages returned in results when an operation fails locally,
// before any network call is made.
const (
	// MsgNoPhoneNumber is returned when the recipient phone number is missing.
	MsgNoPhoneNumber = "You have not specified the recipient phone number."

	// MsgNoCode is returned when the verification code is missing.
	MsgNoCode = "You have not specified the verification code."

	// MsgNoText is returned when the message text is missing.
	MsgNoText = "You have not specified the message text."

	// MsgNoAPIKey is returned when no API key has been set.
	MsgNoAPIKey = "You have not specified the API key."

	// MsgConnectionError is the fallback message for a network failure
	// that carries no description of its own.
	MsgConnectionError = "Connection error."
)

// DecodeError represents a response body that could not be decoded as JSON.
type DecodeError struct {
	StatusCode int
	Body       string // snippet of the undecodable body
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed API response (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// failureMessage converts a transport-level error into the message carried
// by an OK=false result. Returns ok=false when the error is not a network
// failure and must surface as an error instead.
func failureMessage(err error) (string, bool) {
	var netErr *api.NetworkError
	if !errors.As(err, &netErr) {
		return "", false
	}
	if netErr.Err == nil || netErr.Err.Error() == "" {
		return MsgConnectionError, true
	}
	return netErr.Err.Error(), true
}

// wrapError converts internal API errors to public errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var decErr *api.DecodeError
	if errors.As(err, &decErr) {
		return &DecodeError{
			StatusCode: decErr.StatusCode,
			Body:       decErr.Body,
			Err:        decErr.Err,
		}
	}

	return err
}

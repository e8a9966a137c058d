package textlink

import (
	"errors"
	"strings"
	"testing"

	"github.com/textlink-sms/textlink-go/internal/api"
)

func TestDecodeError_Error(t *testing.T) {
	err := &DecodeError{
		StatusCode: 502,
		Body:       "<html>",
		Err:        errors.New("invalid character '<'"),
	}

	msg := err.Error()
	if !strings.Contains(msg, "502") {
		t.Errorf("Error() = %q, want status code included", msg)
	}
	if !strings.Contains(msg, "invalid character") {
		t.Errorf("Error() = %q, want underlying error included", msg)
	}
}

func TestDecodeError_Is(t *testing.T) {
	err := error(&DecodeError{StatusCode: 200, Err: errors.New("unexpected end of JSON input")})

	if !errors.Is(err, ErrMalformedResponse) {
		t.Error("errors.Is(DecodeError, ErrMalformedResponse) = false, want true")
	}
}

func TestDecodeError_Unwrap(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := &DecodeError{Err: inner}

	if !errors.Is(err, inner) {
		t.Error("errors.Is(DecodeError, inner) = false, want true")
	}
}

func TestFailureMessage_NetworkError(t *testing.T) {
	msg, ok := failureMessage(&api.NetworkError{Err: errors.New("connection refused")})
	if !ok {
		t.Fatal("failureMessage() ok = false, want true")
	}
	if msg != "connection refused" {
		t.Errorf("failureMessage() = %q, want connection refused", msg)
	}
}

func TestFailureMessage_NetworkErrorWithoutDescription(t *testing.T) {
	msg, ok := failureMessage(&api.NetworkError{})
	if !ok {
		t.Fatal("failureMessage() ok = false, want true")
	}
	if msg != MsgConnectionError {
		t.Errorf("failureMessage() = %q, want %q", msg, MsgConnectionError)
	}
}

func TestFailureMessage_OtherError(t *testing.T) {
	if _, ok := failureMessage(errors.New("something else")); ok {
		t.Error("failureMessage() ok = true, want false for non-network error")
	}
}

func TestWrapError(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	wrapped := wrapError(&api.DecodeError{StatusCode: 500, Body: "x", Err: inner})

	var decErr *DecodeError
	if !errors.As(wrapped, &decErr) {
		t.Fatalf("wrapError() = %T, want *DecodeError", wrapped)
	}
	if decErr.StatusCode != 500 {
		t.Errorf("StatusCode = %d, want 500", decErr.StatusCode)
	}
	if decErr.Body != "x" {
		t.Errorf("Body = %q, want x", decErr.Body)
	}

	if got := wrapError(nil); got != nil {
		t.Errorf("wrapError(nil) = %v, want nil", got)
	}

	passthrough := errors.New("other")
	if got := wrapError(passthrough); got != passthrough {
		t.Errorf("wrapError(other) = %v, want passthrough", got)
	}
}

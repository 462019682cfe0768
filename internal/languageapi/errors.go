package languageapi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidResponse marks every failure raised while validating or decoding
// a language API response.
var ErrInvalidResponse = errors.New("invalid language api response")

// TransportError reports that no usable response arrived: the call failed,
// the API answered false, or the status field was missing.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Error during the api call: %v", e.Cause)
	}
	return "Error during the api call"
}

func (e *TransportError) Unwrap() error { return e.Cause }

func (e *TransportError) Is(target error) bool { return target == ErrInvalidResponse }

// APIError reports a response whose status is not the success marker.
type APIError struct {
	Status    string
	ErrorType string
	ErrorCode string
	// Detail is the response data rendered as text.
	Detail string
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString("Wrong response: ")
	if e.ErrorType != "" {
		b.WriteString("Type(")
		b.WriteString(e.ErrorType)
		b.WriteString(") ")
	}
	if e.ErrorCode != "" {
		b.WriteString("Code(")
		b.WriteString(e.ErrorCode)
		b.WriteString(") ")
	}
	b.WriteString(e.Detail)
	return b.String()
}

func (e *APIError) Is(target error) bool { return target == ErrInvalidResponse }

// EmptyPayloadError reports a successful status whose data is false.
type EmptyPayloadError struct{}

func (e *EmptyPayloadError) Error() string { return "Wrong content!" }

func (e *EmptyPayloadError) Is(target error) bool { return target == ErrInvalidResponse }

// ShapeError reports data that does not match the shape its action implies.
type ShapeError struct {
	Action Action
	Want   string
	Cause  error
}

func (e *ShapeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unexpected %s payload, want %s: %v", e.Action, e.Want, e.Cause)
	}
	return fmt.Sprintf("unexpected %s payload, want %s", e.Action, e.Want)
}

func (e *ShapeError) Unwrap() error { return e.Cause }

func (e *ShapeError) Is(target error) bool { return target == ErrInvalidResponse }

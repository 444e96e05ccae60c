package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies engine failures. Only KindInvalidInput and
// KindUpstreamUnavailable ever surface to callers; the rest are degradations
// observable in logs only.
type ErrorKind string

const (
	KindInvalidInput           ErrorKind = "InvalidInput"
	KindUpstreamUnavailable    ErrorKind = "UpstreamUnavailable"
	KindPartialUpstreamFailure ErrorKind = "PartialUpstreamFailure"
	KindCalendarUnavailable    ErrorKind = "CalendarUnavailable"
)

// EngineError is a classified engine failure with a human-readable message.
type EngineError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *EngineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// NewInvalidInput builds a fatal bad-request error.
func NewInvalidInput(message string, err error) *EngineError {
	return &EngineError{Kind: KindInvalidInput, Message: message, Err: err}
}

// NewUpstreamUnavailable builds a fatal all-sources-failed error.
func NewUpstreamUnavailable(message string, err error) *EngineError {
	return &EngineError{Kind: KindUpstreamUnavailable, Message: message, Err: err}
}

// KindOf extracts the ErrorKind from an error, or "" for plain errors.
func KindOf(err error) ErrorKind {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return ""
}

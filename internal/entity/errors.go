package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownFailure = errors.New("delivery failed for an unknown reason")

// ParseError means the request body could not be decoded into a submission.
type ParseError struct {
	Code string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TransportConfigError means the SMTP settings are missing or invalid.
type TransportConfigError struct {
	Code    string
	Message string
	Err     error
}

func (e *TransportConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *TransportConfigError) Unwrap() error { return e.Err }

// DeliveryError means the relay rejected the message or did not answer in time.
type DeliveryError struct {
	Code string
	Err  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

func IsTransportConfigError(err error) bool {
	var target *TransportConfigError
	return errors.As(err, &target)
}

func IsDeliveryError(err error) bool {
	var target *DeliveryError
	return errors.As(err, &target)
}

// ErrorCode returns the code of a known error, or "UNKNOWN".
func ErrorCode(err error) string {
	var pe *ParseError
	var ce *TransportConfigError
	var de *DeliveryError
	switch {
	case errors.As(err, &pe):
		return pe.Code
	case errors.As(err, &ce):
		return ce.Code
	case errors.As(err, &de):
		return de.Code
	default:
		return "UNKNOWN"
	}
}

package timezone

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of them with errors.Is.
var (
	ErrParse           = errors.New("parse error")
	ErrUnknownTimezone = errors.New("unknown timezone")
	ErrOutOfRange      = errors.New("out of range")
)

// ParseError reports input text that does not match the declared or inferred format.
type ParseError struct {
	Value  string
	Format string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse %q", e.Value)
	if e.Format != "" {
		msg += fmt.Sprintf(" as %q", e.Format)
	}

	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// UnknownTimezoneError reports an identifier missing from the timezone database.
type UnknownTimezoneError struct {
	Name string
	Err  error
}

func (e *UnknownTimezoneError) Error() string {
	return fmt.Sprintf("unknown timezone %q", e.Name)
}

func (e *UnknownTimezoneError) Unwrap() error { return e.Err }

func (e *UnknownTimezoneError) Is(target error) bool { return target == ErrUnknownTimezone }

// OutOfRangeError reports an instant outside years 0000 through 9999.
type OutOfRangeError struct {
	Value  string
	Reason string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s is out of range: %s", e.Value, e.Reason)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

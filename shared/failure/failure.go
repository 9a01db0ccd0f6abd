package failure

import (
	"errors"
	"net/http"

	"tzdate/shared/timezone"
)

// Kinds let clients branch on a failure without matching message text.
const (
	KindInvalidRequest  = "invalid_request"
	KindParse           = "parse_error"
	KindUnknownTimezone = "unknown_timezone"
	KindOutOfRange      = "out_of_range"
	KindNotFound        = "not_found"
	KindInternal        = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var InvalidEpochParam = &Failure{
	Code:    http.StatusBadRequest,
	Kind:    KindInvalidRequest,
	Message: "epoch must be an integer number of Unix seconds",
}

var InvalidOutputFormat = &Failure{
	Code:    http.StatusBadRequest,
	Kind:    KindInvalidRequest,
	Message: "invalid output format",
}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

func wrap(code int, kind string, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Kind: kind, Message: err.Error()}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	return wrap(http.StatusBadRequest, KindInvalidRequest, err)
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidRequest,
		Message: msg,
	}
}

// UnprocessableEntity returns a new Failure for well-formed input the service cannot represent.
func UnprocessableEntity(err error) error {
	return wrap(http.StatusUnprocessableEntity, KindOutOfRange, err)
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	return wrap(http.StatusInternalServerError, KindInternal, err)
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// FromTimezone maps conversion errors onto HTTP failures. Parse and unknown timezone errors
// are the caller's fault, out of range instants are unprocessable, anything else is internal.
func FromTimezone(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, timezone.ErrParse):
		return wrap(http.StatusBadRequest, KindParse, err)
	case errors.Is(err, timezone.ErrUnknownTimezone):
		return wrap(http.StatusBadRequest, KindUnknownTimezone, err)
	case errors.Is(err, timezone.ErrOutOfRange):
		return UnprocessableEntity(err)
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail
	}

	return InternalError(err)
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of an error interface. Errors that are not failures are internal.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Kind != "" {
		return fail.Kind
	}

	return KindInternal
}

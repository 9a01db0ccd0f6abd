package response

import (
	"encoding/json"
	"net/http"

	"tzdate/shared/constant"
	"tzdate/shared/failure"
	"tzdate/shared/logger"
)

// Data wraps a successful conversion result.
type Data[T any] struct {
	Data T `json:"data"`
}

// Error describes a failed request. Kind is one of the failure kinds, e.g. parse_error.
type Error struct {
	Error string `json:"error"`
	Kind  string `json:"kind" enums:"invalid_request,parse_error,unknown_timezone,out_of_range,not_found,internal"`
}

type Message struct {
	Message string `json:"message"`
}

// WithResult sends result wrapped in Data.
func WithResult[T any](writer http.ResponseWriter, code int, result T) {
	write(writer, code, Data[T]{Data: result})
}

// WithError sends err with the status and kind of the failure it wraps. Errors that are
// not failures are reported as internal without leaking their text.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	kind := failure.GetKind(err)

	msg := err.Error()
	if code == http.StatusInternalServerError && kind == failure.KindInternal {
		logger.ErrorWithStack(err)
		msg = http.StatusText(code)
	}

	write(writer, code, Error{Error: msg, Kind: kind})
}

// WithNotFound answers routes outside the conversion API.
func WithNotFound(writer http.ResponseWriter, request *http.Request) {
	WithError(writer, failure.NotFound("no route for "+request.Method+" "+request.URL.Path))
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: message})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

// write keeps patterns and labels such as "<" and "&" readable in the body.
func write(writer http.ResponseWriter, code int, payload any) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(payload); err != nil {
		logger.ErrorWithStack(err)
	}
}

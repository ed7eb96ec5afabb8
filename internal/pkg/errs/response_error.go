package errs

import (
	"net/http"
)

type Kind string

const (
	KindBadRequest           Kind = "BAD_REQUEST"
	KindUnauthorized         Kind = "UNAUTHORIZED"
	KindForbidden            Kind = "FORBIDDEN"
	KindNotFound             Kind = "NOT_FOUND"
	KindMethodNotAllowed     Kind = "METHOD_NOT_ALLOWED"
	KindUnsupportedMediaType Kind = "UNSUPPORTED_MEDIA_TYPE"
	KindInternal             Kind = "INTERNAL"
	// status code reported by a remote collaborator, passed through as-is
	KindUpstream Kind = "UPSTREAM"
)

// ResponseError is the single failure type surfaced to API callers.
// StatusCode becomes the HTTP status and Message the response body.
type ResponseError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Cause      error
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return string(e.Kind)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}

func newResponseError(kind Kind, status int, msg string) *ResponseError {
	return &ResponseError{Kind: kind, StatusCode: status, Message: msg}
}

func BadRequest(msg string) *ResponseError {
	return newResponseError(KindBadRequest, http.StatusBadRequest, msg)
}

func Unauthorized(msg string) *ResponseError {
	return newResponseError(KindUnauthorized, http.StatusUnauthorized, msg)
}

func Forbidden(msg string) *ResponseError {
	return newResponseError(KindForbidden, http.StatusForbidden, msg)
}

func NotFound(msg string) *ResponseError {
	return newResponseError(KindNotFound, http.StatusNotFound, msg)
}

func MethodNotAllowed(msg string) *ResponseError {
	return newResponseError(KindMethodNotAllowed, http.StatusMethodNotAllowed, msg)
}

func UnsupportedMediaType(msg string) *ResponseError {
	return newResponseError(KindUnsupportedMediaType, http.StatusUnsupportedMediaType, msg)
}

func Internal(msg string, cause error) *ResponseError {
	e := newResponseError(KindInternal, http.StatusInternalServerError, msg)
	e.Cause = Wrap(cause, msg)
	return e
}

// WithStatus builds an error for an arbitrary status code, mapping known
// codes onto their kind.
func WithStatus(status int, msg string, cause error) *ResponseError {
	kind, ok := kindByStatus[status]
	if !ok {
		kind = KindUpstream
	}
	e := newResponseError(kind, status, msg)
	e.Cause = cause
	return e
}

var kindByStatus = map[int]Kind{
	http.StatusBadRequest:           KindBadRequest,
	http.StatusUnauthorized:         KindUnauthorized,
	http.StatusForbidden:            KindForbidden,
	http.StatusNotFound:             KindNotFound,
	http.StatusMethodNotAllowed:     KindMethodNotAllowed,
	http.StatusUnsupportedMediaType: KindUnsupportedMediaType,
	http.StatusInternalServerError:  KindInternal,
}

// StatusCode reports the status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var re *ResponseError
	if As(err, &re) && re.StatusCode != 0 {
		return re.StatusCode, true
	}
	return 0, false
}

// AsResponseError normalizes any error into a ResponseError. Errors without
// a status code become Internal.
func AsResponseError(err error) *ResponseError {
	if err == nil {
		return nil
	}
	var re *ResponseError
	if As(err, &re) {
		return re
	}
	return Internal(err.Error(), err)
}

// Prefixed rewraps err with a stage prefix, keeping its status code.
func Prefixed(err error, prefix string) *ResponseError {
	if err == nil {
		return nil
	}
	re := AsResponseError(err)
	return &ResponseError{
		Kind:       re.Kind,
		StatusCode: re.StatusCode,
		Message:    prefix + ": " + re.Error(),
		Cause:      err,
	}
}

package aihorde

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// maxErrorBodySize limits how much of a raw body Error prints. Body itself
// is never truncated.
const maxErrorBodySize = 4096

// ErrorKind is the failure category of an [Error].
type ErrorKind uint8

const (
	// KindTransport is a network or connection failure reported by the
	// HTTP client, including context cancellation.
	KindTransport ErrorKind = iota + 1

	// KindMalformedBody means the server answered with a success status but
	// the body did not decode into the expected shape.
	KindMalformedBody

	// KindAPI is a structured rejection: the body decoded as a
	// ValidationError and Code/Message are set.
	KindAPI

	// KindHTTPStatus is a non-success status whose body was not a
	// ValidationError. Body holds the raw response text.
	KindHTTPStatus

	// KindInvalidURL is a base URL that could not be used. It is only
	// produced by [ParseBaseURL].
	KindInvalidURL

	// KindIO is a failure while reading the response body.
	KindIO

	// KindInvalidRequest is a local argument or validation failure; no
	// request was sent.
	KindInvalidRequest
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindMalformedBody:
		return "malformed_body"
	case KindAPI:
		return "api"
	case KindHTTPStatus:
		return "http_status"
	case KindInvalidURL:
		return "invalid_url"
	case KindIO:
		return "io"
	case KindInvalidRequest:
		return "invalid_request"
	default:
		return "unknown"
	}
}

// Error represents an AI Horde client error.
//
// Branch on the category with errors.Is and the sentinels below, or use
// errors.As to reach the details:
//
//	var herr *aihorde.Error
//	if errors.As(err, &herr) && herr.Kind == aihorde.KindAPI {
//	    fmt.Println(herr.Code, herr.Message)
//	}
type Error struct {
	Kind ErrorKind

	// Op is the client method that failed, e.g. "Submit".
	Op string

	// Status is the HTTP status code, or 0 when no response was received.
	Status int

	// Code is the horde error code. Only set for KindAPI.
	Code ErrorCode

	// Message is the horde's message for KindAPI, or a local description.
	Message string

	// Body is the raw response text for KindHTTPStatus and KindMalformedBody.
	Body string

	// Fields holds per-field messages when the horde sends them.
	Fields map[string]string

	Cause error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("aihorde: %s: %s", e.Op, e.Kind)
	switch e.Kind {
	case KindAPI:
		msg += fmt.Sprintf(" %s (status %d)", e.Code, e.Status)
		if e.Message != "" {
			msg += ": " + e.Message
		}
	case KindHTTPStatus:
		msg += fmt.Sprintf(" %d: %s", e.Status, truncateBody(e.Body))
	default:
		if e.Message != "" {
			msg += ": " + e.Message
		}
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func truncateBody(body string) string {
	if len(body) <= maxErrorBodySize {
		return body
	}
	cut := maxErrorBodySize
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return fmt.Sprintf("%s... (%d bytes total)", body[:cut], len(body))
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrTransport)
// works regardless of the other fields.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Kind == e.Kind
}

// Sentinel errors, one per kind.
var (
	ErrTransport      = &Error{Kind: KindTransport}
	ErrMalformedBody  = &Error{Kind: KindMalformedBody}
	ErrAPI            = &Error{Kind: KindAPI}
	ErrHTTPStatus     = &Error{Kind: KindHTTPStatus}
	ErrInvalidURL     = &Error{Kind: KindInvalidURL}
	ErrIO             = &Error{Kind: KindIO}
	ErrInvalidRequest = &Error{Kind: KindInvalidRequest}
)

func newError(kind ErrorKind, op, message string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Cause: cause}
}

// ErrorCodeOf returns the horde error code carried by err, or
// ErrorCodeUnknown when err is not a KindAPI error.
func ErrorCodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindAPI {
		return e.Code
	}
	return ErrorCodeUnknown
}

// IsNotFound reports whether err is a 404 response or one of the horde's
// not-found error codes.
func IsNotFound(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case ErrorCodeRequestNotFound, ErrorCodeUserNotFound, ErrorCodeWorkerNotFound,
		ErrorCodeTeamNotFound, ErrorCodeFilterNotFound:
		return true
	}
	return e.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err means the API key was rejected.
func IsUnauthorized(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case ErrorCodeInvalidAPIKey, ErrorCodeWrongCredentials:
		return true
	}
	return e.Status == http.StatusUnauthorized
}

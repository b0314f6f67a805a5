// Package common defines the error taxonomy shared by repositories, services
// and the HTTP layer. Callers should use errors.Is to match these values.
package common

import "errors"

// Kind is a stable, machine-readable error class exposed to API clients.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindConflict         Kind = "conflict"
	KindAuthentication   Kind = "authentication"
	KindMalformedRequest Kind = "malformed_request"
	KindNotFound         Kind = "not_found"
	KindStoreUnavailable Kind = "store_unavailable"
	KindInternal         Kind = "internal"
)

// Error carries a Kind and the client-facing message. Err, when set, is the
// underlying cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so sentinels below work with errors.Is
// regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// NewError builds an *Error of the given kind.
func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// WrapError builds an *Error of the given kind that keeps cause for logging.
func WrapError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Operation errors, matched by kind.
	ErrorValidation       = NewError(KindValidation, "Missing fields")
	ErrorConflict         = NewError(KindConflict, "User already exists")
	ErrorUnauthorized     = NewError(KindAuthentication, "Invalid credentials")
	ErrorMalformedRequest = NewError(KindMalformedRequest, "Invalid JSON body")
	ErrorRouteNotFound    = NewError(KindNotFound, "Route not found")
	ErrorStoreUnavailable = NewError(KindStoreUnavailable, "Store unavailable")
	ErrorInternal         = NewError(KindInternal, "internal error")
)

// KindOf reports the Kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Package serrors defines semantic error kinds shared by the resolver clients,
// the resolution engine and the API layer. A kind says what happened (the name
// does not exist, the lookup timed out, the input was invalid) independently of
// the concrete cause, so callers can classify failures with errors.Is.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be used with errors.Is/As through the
// serrors.Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Lookup kinds describe how a single DNS lookup ended. Only ErrNotRegistered is
// authoritative; every other lookup kind is transient and carries no
// information about registration status.
var (
	// ErrNotRegistered indicates the resolver explicitly reported that the name does not exist (NXDOMAIN).
	ErrNotRegistered = NewKind("NOT_REGISTERED")
	// ErrTimeout indicates the lookup did not finish before its deadline.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrNoAnswer indicates the name exists but has no A record.
	ErrNoAnswer = NewKind("NO_ANSWER")
	// ErrInvalidName indicates the name can not be sent to a resolver (bad label, too long, bad IDN).
	ErrInvalidName = NewKind("INVALID_NAME")
	// ErrUnavailable indicates a network failure or an upstream refusal (SERVFAIL, REFUSED).
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrInternal indicates an unexpected failure such as a malformed resolver response.
	ErrInternal = NewKind("INTERNAL")
)

// Request kinds are returned at the boundary, before any lookup is dispatched.
var (
	// ErrInvalidConfig indicates an unusable run configuration (no seeds, no zones, bad limits).
	ErrInvalidConfig = NewKind("INVALID_CONFIG")
	// ErrBadRequest indicates the client sent a malformed payload.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error and an optional message.
//
// errors.Is and errors.As match either the kind sentinel or the wrapped error.
// The message is "<msg>: <err>", "<msg>", "<err>" or the kind name, depending
// on which parts are set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target matches the kind sentinel or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As enables type assertions against either the kind sentinel or the wrapped error.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the semantic kind associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the first semantic kind found in err's chain, or nil when err
// carries none. A bare Kind sentinel is returned as is.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

package pattern

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrConstraint           = NewError("constraint violated")
	ErrInvalidArgument      = NewError("invalid argument")
	ErrInvalidFormat        = NewError("invalid format")
	ErrUnsupportedOperation = NewError("unsupported operation")
	ErrMaxDepthExceeded     = NewError("maximum value depth exceeded")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
//
// Errors derived from a sentinel via [Error.Wrap] or [Error.With] match that
// sentinel with [errors.Is].
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
	base  *Error      // Sentinel this error was derived from
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || (e.base != nil && e.base == t)
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Attrs returns a copy of the structured attributes attached to e.
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
		base:  e.root(),
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		base:  e.root(),
	}
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

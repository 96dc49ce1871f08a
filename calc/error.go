package calc

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
//
// Every failure mode of the evaluator is one of these sentinels, optionally
// wrapped with the offending text via [Error.Wrap]. Callers match with
// [errors.Is] against the sentinel regardless of wrapped detail.
var (
	ErrUnknownName      = NewError("unknown function or unit")
	ErrIllegalChar      = NewError("illegal character")
	ErrInvalidNumber    = NewError("invalid number")
	ErrMismatchedParens = NewError("mismatched parentheses")
	ErrMissingOperands  = NewError("operator %s missing sufficient operands")
	ErrDivideByZero     = NewError("divide by zero")
	ErrModuloByZero     = NewError("modulo by zero")
	ErrInvalidOperation = NewError("invalid operation")
	ErrExtraNumbers     = NewError("extra numbers")
	ErrEmptyExpression  = NewError("empty expression")
)

// Error represents an evaluation error with optional structured logging
// attributes. It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	text  string      // Rendered message override, set by Msgf
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// message returns the displayed base message: the Msgf rendering when one
// was applied, otherwise the message as constructed.
func (e *Error) message() string {
	if e.text != "" {
		return e.text
	}

	return e.msg
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if msg := e.message(); msg != "" {
		part = append(part, msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same base message.
// Wrapped and attributed copies of a sentinel still match the sentinel
// with [errors.Is].
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if msg := e.message(); msg != "" {
		attrs = append(attrs, slog.String("error", msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		text:  e.text,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// Wrapf creates a new Error wrapping a formatted error message, which is
// typically the offending input text.
func (e *Error) Wrapf(format string, args ...any) *Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Msgf returns a copy of e whose displayed message interpolates args into
// the base message's format verbs. The copy still matches e with
// [errors.Is].
func (e *Error) Msgf(args ...any) *Error {
	return &Error{
		msg:   e.msg,
		text:  fmt.Sprintf(e.msg, args...),
		err:   e.err,
		attrs: e.attrs,
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
		text:  e.text,
		err:   e.err,
		attrs: newAttrs,
	}
}

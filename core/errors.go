package core

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures.
type Kind string

// Error kinds. Record errors are recovered by skipping the record; the
// others abort the run.
const (
	KindIO         Kind = "io"
	KindDataFormat Kind = "data_format"
	KindRecord     Kind = "record"
	KindTemplate   Kind = "template"
)

// Error is a pipeline error with a kind, message and optional cause.
type Error struct {
	Kind    Kind
	Message string
	// Index is the input position of the offending record for KindRecord,
	// and -1 otherwise.
	Index int
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Kind == KindRecord && e.Index >= 0 {
		msg = fmt.Sprintf("record %d: %s", e.Index, msg)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinel errors for use with errors.Is().
var (
	ErrIO         = &Error{Kind: KindIO, Message: "io error", Index: -1}
	ErrDataFormat = &Error{Kind: KindDataFormat, Message: "data format error", Index: -1}
	ErrRecord     = &Error{Kind: KindRecord, Message: "malformed record", Index: -1}
	ErrTemplate   = &Error{Kind: KindTemplate, Message: "template error", Index: -1}
)

// IOError wraps a read or write failure.
func IOError(msg string, cause error) *Error {
	return &Error{Kind: KindIO, Message: msg, Index: -1, cause: cause}
}

// DataFormatError reports a dataset whose top-level shape is wrong.
func DataFormatError(msg string) *Error {
	return &Error{Kind: KindDataFormat, Message: msg, Index: -1}
}

// RecordErrorf reports a single malformed record.
func RecordErrorf(index int, format string, args ...any) *Error {
	return &Error{Kind: KindRecord, Message: fmt.Sprintf(format, args...), Index: index}
}

// TemplateErrorf reports a template that cannot take the fragments.
func TemplateErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindTemplate, Message: fmt.Sprintf(format, args...), Index: -1}
}

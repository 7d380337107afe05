package poreader

import (
	"fmt"
	"strings"
)

// ErrorKind classifies reader errors.
type ErrorKind uint8

const (
	_ ErrorKind = iota

	// ErrorKindIO wraps a failure of the underlying reader.
	ErrorKindIO

	// ErrorKindParse reports text that does not follow the PO grammar.
	ErrorKindParse

	// ErrorKindUnexpected reports structurally valid input that violates
	// a catalogue invariant.
	ErrorKindUnexpected

	// ErrorKindPluralForms reports a malformed Plural-Forms definition.
	ErrorKindPluralForms
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindIO:
		return "io"
	case ErrorKindParse:
		return "parse"
	case ErrorKindUnexpected:
		return "unexpected"
	case ErrorKindPluralForms:
		return "plural forms"
	}
	return "unknown"
}

// Error is the error type produced by Reader and ParsePluralForms.
type Error struct {
	Kind ErrorKind

	// Line is the 1-based line the error refers to, 0 when the error is
	// not tied to a line.
	Line int

	// Got is the offending text and Expected the awaited construct.
	// Both are set for parse errors only and either may be empty.
	Got      string
	Expected string

	// Msg describes unexpected and plural-forms errors.
	Msg string

	// Err is the wrapped cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindIO:
		if e.Line == 0 {
			return e.Err.Error()
		}
		return fmt.Sprintf("%v at line %d", e.Err, e.Line)
	case ErrorKindParse:
		var b strings.Builder
		fmt.Fprintf(&b, "parse error at line %d", e.Line)
		if e.Expected != "" {
			fmt.Fprintf(&b, " expected %q", e.Expected)
		}
		if e.Got != "" {
			fmt.Fprintf(&b, ", got %q", e.Got)
		}
		return b.String()
	case ErrorKindUnexpected:
		if e.Line == 0 {
			return "unexpected error: " + e.Msg
		}
		return fmt.Sprintf("unexpected error at line %d: %s", e.Line, e.Msg)
	case ErrorKindPluralForms:
		msg := e.Msg
		if msg == "" && e.Err != nil {
			msg = e.Err.Error()
		}
		return "error in plural forms: " + msg
	}
	return "unknown error"
}

func (e *Error) Unwrap() error { return e.Err }

func newIOError(line int, err error) *Error {
	return &Error{Kind: ErrorKindIO, Line: line, Err: err}
}

func newParseError(line int, got, expected string) *Error {
	return &Error{Kind: ErrorKindParse, Line: line, Got: got, Expected: expected}
}

func newUnexpectedError(line int, msg string) *Error {
	return &Error{Kind: ErrorKindUnexpected, Line: line, Msg: msg}
}

func newPluralFormsError(err error) *Error {
	return &Error{Kind: ErrorKindPluralForms, Err: err}
}

func newPluralFormsMsgError(msg string) *Error {
	return &Error{Kind: ErrorKindPluralForms, Msg: msg}
}

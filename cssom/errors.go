package cssom

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors of the styling engine.
type ErrorKind uint8

// Kinds of errors. Parse errors of kind StylesheetParseError,
// SelectorSyntaxError and ArgumentParseError are fatal for attaching a
// stylesheet. PropertyError is recoverable: the offending declaration is
// dropped from the cascade.
const (
	NoError ErrorKind = iota
	StylesheetParseError
	SelectorSyntaxError
	ArgumentParseError
	PropertyError
	AttachError
	RenderError
)

func (k ErrorKind) String() string {
	switch k {
	case StylesheetParseError:
		return "stylesheet-parse"
	case SelectorSyntaxError:
		return "selector-syntax"
	case ArgumentParseError:
		return "argument-parse"
	case PropertyError:
		return "property"
	case AttachError:
		return "attach"
	case RenderError:
		return "render"
	}
	return "none"
}

// Error is a tagged error variant carrying the kind of error, the source
// position (if known) and the offending text.
type Error struct {
	Kind     ErrorKind
	Position Position
	Text     string // offending text, e.g. the selector or declaration
	Err      error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	var msg string
	if e.Position.IsZero() {
		msg = fmt.Sprintf("%s error: %q", e.Kind, e.Text)
	} else {
		msg = fmt.Sprintf("%s error at %s: %q", e.Kind, e.Position, e.Text)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates a new error of kind k for an offending text.
func Errorf(k ErrorKind, text string, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Text: text, Err: fmt.Errorf(format, args...)}
}

// At sets the source position of an error, if not already set.
func (e *Error) At(pos Position) *Error {
	if e.Position.IsZero() {
		e.Position = pos
	}
	return e
}

// KindOf returns the kind of err, if err is or wraps an *Error.
// For other errors it returns NoError.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}

// Package errors provides structured error handling for gradientview.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is matched by every ArgumentError through errors.Is.
var ErrInvalidArgument = stderrors.New("invalid argument")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument indicates a rejected argument.
	KindInvalidArgument
	// KindParsing indicates an attribute value that could not be parsed.
	KindParsing
	// KindStyle indicates a style sheet that failed to load or validate.
	KindStyle
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindParsing:
		return "parsing"
	case KindStyle:
		return "style"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// DriftError represents a structured error.
type DriftError struct {
	// Op is the operation that failed (e.g., "widgets.GradientView.SetTouchBrightness").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DriftError) Unwrap() error {
	return e.Err
}

// ArgumentError describes an argument outside its accepted range.
type ArgumentError struct {
	// Name is the argument name.
	Name string
	// Value is the rejected value.
	Value any
	// Reason says what the argument must satisfy.
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Name, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InvalidArgument builds a KindInvalidArgument error for op.
func InvalidArgument(op, name string, value any, reason string) *DriftError {
	return &DriftError{
		Op:        op,
		Kind:      KindInvalidArgument,
		Err:       &ArgumentError{Name: name, Value: value, Reason: reason},
		Timestamp: time.Now(),
	}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "preview.Host.Run").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a value that could not be parsed.
type ParseError struct {
	// Source names where the value came from (a file path or "attributes").
	Source string
	// Field is the attribute or key being parsed.
	Field string
	// Got is the raw value.
	Got any
	// Err is the underlying parse failure, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %s in %s: %v", e.Field, e.Source, e.Err)
	}
	return fmt.Sprintf("failed to parse %s in %s: got %T", e.Field, e.Source, e.Got)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *DriftError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

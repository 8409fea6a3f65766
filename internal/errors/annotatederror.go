// Package errors wraps the standard library errors package with support for
// annotating errors with [slog.Attr] and the source location of the wrap.
// The annotations surface in logs through [SlogError].
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// annotatedError carries a message, a wrapped cause, structured annotations,
// and the file:line of the call site that created it.
type annotatedError struct {
	msg    string
	cause  error
	attrs  []slog.Attr
	source string
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// callerSource resolves the file:line of the caller skipping the given number
// of frames on top of callerSource itself.
func callerSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	// Trim to the last two path segments for readable log output.
	short := file
	slashes := 0
	for i := len(file) - 1; i >= 0; i-- {
		if file[i] == '/' {
			slashes++
			if slashes == 2 {
				short = file[i+1:]
				break
			}
		}
	}
	return fmt.Sprintf("%s:%d", short, line)
}

// Wrap annotates err with a message and optional [slog.Attr] annotations.
// Returns nil when err is nil so it can be used unconditionally.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return &annotatedError{
		msg:    msg,
		cause:  err,
		attrs:  attrs,
		source: callerSource(1),
	}
}

// NewSentinel creates a sentinel error with a captured source location.
func NewSentinel(msg string) error {
	return &annotatedError{
		msg:    msg,
		cause:  nil,
		attrs:  nil,
		source: callerSource(1),
	}
}

// SlogError converts an error into a [slog.Attr] group containing the message,
// the collected annotations of every annotated error in the chain, and the
// source location closest to the root cause.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	var (
		annotations []slog.Attr
		source      string
	)
	for e := err; e != nil; e = errors.Unwrap(e) {
		if annotated, ok := e.(*annotatedError); ok {
			annotations = append(annotations, annotated.attrs...)
			source = annotated.source
		}
	}

	group := []any{slog.String("message", err.Error())}
	if source != "" {
		group = append(group, slog.String("source", source))
	}
	if len(annotations) > 0 {
		args := make([]any, len(annotations))
		for i, attr := range annotations {
			args[i] = attr
		}
		group = append(group, slog.Group("annotations", args...))
	}
	return slog.Group("error", group...)
}

// Standard library re-exports so callers only import one errors package.

// New calls [errors.New].
func New(text string) error { return errors.New(text) }

// Is calls [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As calls [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Join calls [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Unwrap calls [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

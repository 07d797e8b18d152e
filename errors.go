package rucalc

import (
	"github.com/cockroachdb/errors"
)

// ErrorKind separates structural failures from arithmetic ones.
type ErrorKind int

const (
	// KindParse covers unrecognized words, unbalanced brackets and
	// expressions that leave the operand stack short or over-full.
	KindParse ErrorKind = iota + 1
	// KindMath covers domain failures during evaluation, such as
	// division by zero.
	KindMath
)

func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindMath:
		return "math"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks against an *Error of the matching kind.
var (
	ErrParse = errors.New("parse error")
	ErrMath  = errors.New("math error")
)

// Error is returned by every failing evaluation. The message is meant to be
// shown to the user as is.
type Error struct {
	Kind  ErrorKind
	cause error
}

func (e *Error) Error() string { return e.cause.Error() }

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindParse:
		return target == ErrParse
	case KindMath:
		return target == ErrMath
	}
	return false
}

// Hint returns the user hints attached to the error, joined by newlines.
func (e *Error) Hint() string {
	return errors.FlattenHints(e.cause)
}

func parseErrorf(format string, args ...any) error {
	return &Error{Kind: KindParse, cause: errors.Newf(format, args...)}
}

func mathErrorf(format string, args ...any) error {
	return &Error{Kind: KindMath, cause: errors.Newf(format, args...)}
}

// withHint attaches a user hint to an *Error, leaving other errors alone.
func withHint(err error, hint string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	return &Error{Kind: e.Kind, cause: errors.WithHint(e.cause, hint)}
}

// IsParseError reports whether err is a structural failure.
func IsParseError(err error) bool { return errors.Is(err, ErrParse) }

// IsMathError reports whether err is an arithmetic domain failure.
func IsMathError(err error) bool { return errors.Is(err, ErrMath) }

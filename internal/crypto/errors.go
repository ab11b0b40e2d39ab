package crypto

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can decide how much to expose.
type Kind int

const (
	KindUnknown Kind = iota
	KindFormat
	KindPadding
	KindEncoding
	KindRandomSource
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format error"
	case KindPadding:
		return "padding error"
	case KindEncoding:
		return "encoding error"
	case KindRandomSource:
		return "random source error"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is. Every *Error matches the sentinel of its Kind.
var (
	ErrFormat       = errors.New("malformed envelope")
	ErrPadding      = errors.New("invalid padding")
	ErrEncoding     = errors.New("invalid UTF-8 text")
	ErrRandomSource = errors.New("random source unavailable")
)

func (k Kind) sentinel() error {
	switch k {
	case KindFormat:
		return ErrFormat
	case KindPadding:
		return ErrPadding
	case KindEncoding:
		return ErrEncoding
	case KindRandomSource:
		return ErrRandomSource
	default:
		return nil
	}
}

// Error is the typed failure returned by Encrypt and Decrypt.
type Error struct {
	Kind Kind
	Op   string // "encrypt" or "decrypt"
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(op string, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

package models

import (
	"errors"
	"fmt"

	"github.com/TheMichaelB/textseal/internal/crypto"
)

// Error codes for structured error handling.
const (
	ErrCodeFormat       = "FORMAT_ERROR"
	ErrCodePadding      = "PADDING_ERROR"
	ErrCodeEncoding     = "ENCODING_ERROR"
	ErrCodeRandomSource = "RANDOM_SOURCE_ERROR"
	ErrCodeConfig       = "CONFIG_ERROR"
	ErrCodeInput        = "INPUT_ERROR"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// Sentinel errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// OperationError ties a failure to the CLI operation that produced it.
type OperationError struct {
	Code string
	Op   string
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Code, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// CodeFor maps an error to its code. Crypto kinds keep their identity;
// anything else is internal.
func CodeFor(err error) string {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Code
	}

	switch crypto.KindOf(err) {
	case crypto.KindFormat:
		return ErrCodeFormat
	case crypto.KindPadding:
		return ErrCodePadding
	case crypto.KindEncoding:
		return ErrCodeEncoding
	case crypto.KindRandomSource:
		return ErrCodeRandomSource
	}

	if errors.Is(err, ErrInvalidInput) {
		return ErrCodeInput
	}
	return ErrCodeInternal
}

// NewOperationError wraps err with its code.
func NewOperationError(op string, err error) *OperationError {
	return &OperationError{Code: CodeFor(err), Op: op, Err: err}
}

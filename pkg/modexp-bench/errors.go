package modexpbench

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/core"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/engines"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/filecmp"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/utils"
)

// ErrorCode represents a benchmark error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig

	// ErrDivisionByZero represents a reduction by a zero modulus
	ErrDivisionByZero

	// ErrInvalidRange represents sampling from an empty range
	ErrInvalidRange

	// ErrIOFailure represents a file that could not be opened or read
	ErrIOFailure

	// ErrUnsupportedEngine represents an unknown engine or operands the
	// selected engine cannot handle
	ErrUnsupportedEngine

	// ErrCanceled represents a run stopped through its context
	ErrCanceled
)

var codeNames = map[ErrorCode]string{
	ErrUnknown:           "unknown",
	ErrInvalidConfig:     "invalid config",
	ErrDivisionByZero:    "division by zero",
	ErrInvalidRange:      "invalid range",
	ErrIOFailure:         "I/O failure",
	ErrUnsupportedEngine: "unsupported engine",
	ErrCanceled:          "canceled",
}

// String returns the human-readable name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// BenchError represents a benchmark error
type BenchError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *BenchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("modexp-bench error [%s]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("modexp-bench error [%s]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *BenchError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *BenchError) Is(target error) bool {
	t, ok := target.(*BenchError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf returns the code of the first BenchError in err's chain, or
// ErrUnknown when there is none
func CodeOf(err error) ErrorCode {
	var be *BenchError
	if errors.As(err, &be) {
		return be.Code
	}
	return ErrUnknown
}

// Wrap classifies err into a BenchError. nil stays nil and errors that are
// already BenchErrors are returned unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var be *BenchError
	if errors.As(err, &be) {
		return err
	}
	return &BenchError{Code: classify(err), Message: "operation failed", Cause: err}
}

func classify(err error) ErrorCode {
	switch {
	case errors.Is(err, utils.ErrInvalidConfig):
		return ErrInvalidConfig
	case errors.Is(err, core.ErrDivisionByZero):
		return ErrDivisionByZero
	case errors.Is(err, core.ErrInvalidRange):
		return ErrInvalidRange
	case errors.Is(err, filecmp.ErrIOFailure):
		return ErrIOFailure
	case errors.Is(err, engines.ErrUnknownEngine), errors.Is(err, engines.ErrUnsupportedWidth):
		return ErrUnsupportedEngine
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCanceled
	case errors.As(err, new(*fs.PathError)):
		return ErrIOFailure
	default:
		return ErrUnknown
	}
}

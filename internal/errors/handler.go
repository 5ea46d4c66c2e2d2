package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/primecalc/internal/prime"
)

// ColorProvider supplies terminal colour codes without importing the cli
// package.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// DefaultColorProvider emits no colour codes.
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Red() string    { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// HandleCalculationError prints a status line describing err and returns
// the matching exit code. colors may be nil.
//
// The classes are checked in order: invalid index, deadline, cancellation,
// sieve ceiling, then anything else.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	msgSuffix := ""
	if duration > 0 {
		msgSuffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	switch {
	case errors.Is(err, prime.ErrInvalidArgument):
		fmt.Fprintf(out, "%sStatus: Invalid input.%s %v\n", colors.Red(), colors.Reset(), err)
		return ExitErrorInvalidInput
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", msgSuffix)
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), msgSuffix, colors.Reset())
		return ExitErrorCanceled
	case errors.Is(err, prime.ErrLimitOverflow):
		fmt.Fprintf(out, "Status: Failure. The sieve reached its size ceiling%s: %v\n", msgSuffix, err)
		return ExitErrorGeneric
	}
	fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	return ExitErrorGeneric
}

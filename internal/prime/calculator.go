// Package prime finds the n-th prime number. The core algorithm is an
// adaptive sieve of Eratosthenes seeded by the bound n(ln n + ln ln n);
// a trial-division calculator is provided as an independent reference.
// The Calculator interface wraps the algorithms with tracing, metrics,
// logging and progress reporting for the CLI.
package prime

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Calculator is the interface the orchestration layer uses to run an
// n-th prime algorithm.
type Calculator interface {
	// Calculate returns the n-th prime. Progress updates are sent without
	// blocking on progressChan, which may be nil.
	Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n int, opts Options) (int, error)

	// Name returns the display name of the algorithm (e.g., "Adaptive Sieve").
	Name() string
}

// coreCalculator is a bare algorithm. It may assume n > FastPathMax.
type coreCalculator interface {
	CalculateCore(ctx context.Context, reporter ProgressReporter, n int, opts Options) (int, error)
	Name() string
}

// PrimeCalculator decorates a coreCalculator with argument validation, the
// small-n fast path, tracing, metrics and observer-based progress.
type PrimeCalculator struct {
	core coreCalculator
}

// NewCalculator wraps a core algorithm in the PrimeCalculator decorator,
// which validates n, answers the fast path, and records spans, metrics and
// progress around the core.
//
// Parameters:
//   - core: The algorithm to wrap, e.g. &AdaptiveSieve{}. It must not be nil.
//
// Returns:
//   - Calculator: The decorated calculator.
//
// It panics if core is nil.
func NewCalculator(core coreCalculator) Calculator {
	if core == nil {
		panic("prime: the `coreCalculator` implementation cannot be nil")
	}
	return &PrimeCalculator{core: core}
}

// Name delegates to the wrapped algorithm.
func (c *PrimeCalculator) Name() string {
	return c.core.Name()
}

// Calculate adapts progressChan to a ProgressSubject and runs the
// calculation.
func (c *PrimeCalculator) Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n int, opts Options) (int, error) {
	subject := NewProgressSubject()
	if progressChan != nil {
		subject.Register(NewChannelObserver(progressChan))
	}
	return c.CalculateWithObservers(ctx, subject, calcIndex, n, opts)
}

// CalculateWithObservers runs the calculation and notifies every observer
// registered on subject. subject may be nil.
func (c *PrimeCalculator) CalculateWithObservers(ctx context.Context, subject *ProgressSubject, calcIndex int, n int, opts Options) (result int, err error) {
	algoName := c.core.Name()
	ctx, span := otel.Tracer("primecalc/prime").Start(ctx, "Calculate",
		trace.WithAttributes(attribute.String("algorithm", algoName), attribute.Int("n", n)))
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("prime", result))
		}
		calculationsTotal.WithLabelValues(algoName, status).Inc()
		calculationDuration.WithLabelValues(algoName).Observe(duration)

		log.Debug().
			Str("algo", algoName).
			Int("n", n).
			Int("prime", result).
			Float64("duration", duration).
			Str("status", status).
			Msg("calculation completed")
	}()

	var reporter ProgressReporter = func(float64) {}
	if subject != nil {
		reporter = subject.AsProgressReporter(calcIndex)
	}

	if n < 1 {
		return 0, &InvalidArgumentError{N: n}
	}
	if n <= FastPathMax {
		reporter(1.0)
		return smallPrimes[n-1], nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	result, err = c.core.CalculateCore(ctx, reporter, n, opts)
	if err == nil {
		reporter(1.0)
	}
	return result, err
}

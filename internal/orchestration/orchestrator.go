// Package orchestration runs one or more prime calculators for the same
// index and reconciles their answers.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/primecalc/internal/cli"
	"github.com/agbru/primecalc/internal/config"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/prime"
	"github.com/agbru/primecalc/internal/ui"
)

// CalculationResult is the outcome of one calculator run.
type CalculationResult struct {
	// Name is the calculator's display name, e.g. "Adaptive Sieve".
	Name string
	// Prime is the n-th prime. It is zero when Err is set.
	Prime int
	// Duration is the wall-clock time of the run.
	Duration time.Duration
	Err      error
}

// ProgressBufferMultiplier sizes the progress channel per calculator so a
// slow terminal does not stall the sieves.
const ProgressBufferMultiplier = 5

// observableCalculator is implemented by prime.PrimeCalculator.
type observableCalculator interface {
	CalculateWithObservers(ctx context.Context, subject *prime.ProgressSubject, calcIndex int, n int, opts prime.Options) (int, error)
}

// progressLogThreshold is the progress step between debug log events.
const progressLogThreshold = 0.25

// ExecuteCalculations runs calculators concurrently for cfg.N and collects
// their results.
//
// Each finder is itself single-threaded; only the comparison fans out. A
// failing calculator does not cancel the others. Progress is shared by
// every calculator through one ProgressSubject that feeds the terminal
// display, the primecalc_calculation_progress gauge and the debug log.
//
// Parameters:
//   - ctx: Bounds every calculation (timeout and signals).
//   - calculators: The calculators to run; result i belongs to calculators[i].
//   - cfg: Supplies N and the sieve bound overrides.
//   - out: Receives the progress display.
//
// Returns:
//   - []CalculationResult: One result per calculator, in input order.
func ExecuteCalculations(ctx context.Context, calculators []prime.Calculator, cfg config.AppConfig, out io.Writer) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan prime.ProgressUpdate, len(calculators)*ProgressBufferMultiplier)
	opts := cfg.ToCalculationOptions()

	metrics := prime.NewMetricsObserver()
	metrics.ResetMetrics()
	subject := prime.NewProgressSubject()
	subject.Register(prime.NewChannelObserver(progressChan))
	subject.Register(metrics)
	subject.Register(prime.NewLoggingObserver(log.Logger, progressLogThreshold))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go cli.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calc := range calculators {
		g.Go(func() error {
			start := time.Now()
			var p int
			var err error
			if oc, ok := calc.(observableCalculator); ok {
				p, err = oc.CalculateWithObservers(ctx, subject, i, cfg.N, opts)
			} else {
				p, err = calc.Calculate(ctx, progressChan, i, cfg.N, opts)
			}
			results[i] = CalculationResult{
				Name: calc.Name(), Prime: p, Duration: time.Since(start), Err: err,
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// OutputConfigFor derives the presentation settings of a run from cfg.
func OutputConfigFor(cfg config.AppConfig) cli.OutputConfig {
	return cli.OutputConfig{
		OutputFile: cfg.OutputFile,
		Quiet:      cfg.Quiet,
		Details:    cfg.Details,
		TimeLimit:  cfg.TimeLimit,
		Options:    cfg.ToCalculationOptions(),
	}
}

// AnalyzeComparisonResults reports results and returns the exit code.
//
// With several results it prints a summary table sorted by success then
// duration. Disagreeing successful results yield ExitErrorMismatch; if
// every calculator failed, the first failure is classified by
// apperrors.HandleCalculationError. Otherwise the fastest result is
// displayed according to cfg.
func AnalyzeComparisonResults(results []CalculationResult, cfg config.AppConfig, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	if len(results) > 1 && !cfg.Quiet {
		printSummary(results, out)
	}

	var best *CalculationResult
	for i := range results {
		if results[i].Err == nil {
			best = &results[i]
			break
		}
	}

	if best == nil {
		var firstErr error
		var firstDuration time.Duration
		if len(results) > 0 {
			firstErr, firstDuration = results[0].Err, results[0].Duration
		}
		if firstErr == nil {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No calculator was run.\n")
			return apperrors.ExitErrorGeneric
		}
		if len(results) > 1 {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could find the prime.\n")
		} else {
			fmt.Fprintln(out)
		}
		return apperrors.HandleCalculationError(firstErr, firstDuration, out, cli.CLIColorProvider{})
	}

	for _, res := range results {
		if res.Err == nil && res.Prime != best.Prime {
			fmt.Fprintf(out, "\nGlobal Status: %sCRITICAL ERROR!%s The algorithms disagree on the %d-th prime.\n",
				ui.ColorRed(), ui.ColorReset(), cfg.N)
			return apperrors.ExitErrorMismatch
		}
	}

	if len(results) > 1 && !cfg.Quiet {
		fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	}
	if err := cli.DisplayResultWithConfig(out, best.Prime, cfg.N, best.Duration, best.Name, OutputConfigFor(cfg)); err != nil {
		fmt.Fprintf(out, "%sError saving result: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func printSummary(results []CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sAlgorithm%s\t%sDuration%s\t%sPrime%s\t%sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		status := fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		value := fmt.Sprintf("%d", res.Prime)
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
			value = "-"
		}
		duration := cli.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(tw, "%s%s%s\t%s%s%s\t%s\t%s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(),
			ui.ColorYellow(), duration, ui.ColorReset(),
			value, status)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}
}

package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/primecalc/internal/config"
	"github.com/agbru/primecalc/internal/prime"
)

// GetCalculatorsToRun resolves cfg.Algo against factory. "all" returns
// every registered calculator in name order; an unknown name returns nil.
func GetCalculatorsToRun(cfg config.AppConfig, factory prime.CalculatorFactory) []prime.Calculator {
	if cfg.Algo == "all" {
		keys := factory.List()
		calculators := make([]prime.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(cfg.Algo); err == nil {
		return []prime.Calculator{calc}
	}
	return nil
}

// PrintExecutionConfig echoes the run parameters.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Finding the %s%s%s-th prime with a timeout of %s%s%s (time check at %s%s%s).\n",
		ColorMagenta(), formatNumber(cfg.N), ColorReset(),
		ColorYellow(), cfg.Timeout, ColorReset(),
		ColorYellow(), cfg.TimeLimit, ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ColorCyan(), runtime.NumCPU(), ColorReset(), ColorCyan(), runtime.Version(), ColorReset())
}

// PrintExecutionMode states whether one calculator runs or several are
// compared.
func PrintExecutionMode(calculators []prime.Calculator, out io.Writer) {
	var modeDesc string
	switch len(calculators) {
	case 0:
		modeDesc = "No calculator selected"
	case 1:
		modeDesc = fmt.Sprintf("Single calculation with the %s%s%s algorithm",
			ColorGreen(), calculators[0].Name(), ColorReset())
	default:
		modeDesc = fmt.Sprintf("Concurrent comparison of %d algorithms", len(calculators))
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

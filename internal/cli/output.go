package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/prime"
	"github.com/agbru/primecalc/internal/ui"
)

// Verdict is the outcome of the soft time check.
type Verdict int

const (
	VerdictPass Verdict = iota
	VerdictFail
)

func (v Verdict) String() string {
	if v == VerdictPass {
		return "Pass"
	}
	return "Fail"
}

// EvaluateTime compares elapsed with limit. Reaching the limit exactly
// still passes.
func EvaluateTime(elapsed, limit time.Duration) Verdict {
	if elapsed <= limit {
		return VerdictPass
	}
	return VerdictFail
}

// DisplayTimeCheck prints the "Time Check:" line, green on Pass and red on
// Fail.
func DisplayTimeCheck(out io.Writer, verdict Verdict) {
	color := ColorGreen()
	if verdict == VerdictFail {
		color = ColorRed()
	}
	fmt.Fprintf(out, "\n\nTime Check: %s\n", ui.Paint(color, verdict.String()))
}

// DisplayResult prints the result sentence with the elapsed time in
// seconds, three decimals.
func DisplayResult(out io.Writer, p, n int, elapsed time.Duration) {
	fmt.Fprintf(out, "\nToo easy.. %s%d%s is the nth prime when n is %s%d%s. I found that answer in %s%.3f%s seconds.\n",
		ColorGreen(), p, ColorReset(),
		ColorMagenta(), n, ColorReset(),
		ColorYellow(), elapsed.Seconds(), ColorReset())
}

// DisplayDetails prints the sieve bound the finder starts from for n.
func DisplayDetails(out io.Writer, n int, opts prime.Options, elapsed time.Duration) {
	fmt.Fprintf(out, "\n%s--- Detailed result analysis ---%s\n", ColorBold(), ColorReset())
	durationStr := FormatExecutionDuration(elapsed)
	if elapsed == 0 {
		durationStr = "< 1µs"
	}
	fmt.Fprintf(out, "Calculation time   : %s%s%s\n", ColorGreen(), durationStr, ColorReset())
	if n <= prime.FastPathMax {
		fmt.Fprintf(out, "Method             : %sfast path%s (no sieve)\n", ColorCyan(), ColorReset())
		return
	}
	limit, estimated := prime.InitialBound(n, opts)
	source := "estimated"
	if !estimated {
		source = "fallback"
	}
	fmt.Fprintf(out, "Initial sieve limit: %s%s%s (%s)\n", ColorCyan(), formatNumber(limit), ColorReset(), source)
	fmt.Fprintf(out, "Sieve memory       : %s%s%s bytes per attempt\n", ColorCyan(), formatNumber(limit+1), ColorReset())
}

// OutputConfig selects how a result is presented.
type OutputConfig struct {
	// OutputFile receives a copy of the result when non-empty.
	OutputFile string
	// Quiet prints only the prime.
	Quiet bool
	// Details adds the sieve bound report.
	Details bool
	// TimeLimit drives the time check; zero skips it.
	TimeLimit time.Duration
	// Options are the sieve overrides used for the run.
	Options prime.Options
}

// WriteResultToFile writes a commented result file to cfg.OutputFile,
// creating parent directories as needed. It is a no-op without a path.
func WriteResultToFile(p, n int, duration time.Duration, algo string, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	if dir := filepath.Dir(cfg.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewOutputError(cfg.OutputFile, err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return apperrors.NewOutputError(cfg.OutputFile, err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Nth Prime Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Algorithm: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# N: %d\n", n)
	fmt.Fprintf(file, "\n")
	if _, err := fmt.Fprintf(file, "p(%d) = %d\n", n, p); err != nil {
		return apperrors.NewOutputError(cfg.OutputFile, err)
	}
	return nil
}

// FormatQuietResult is the bare decimal prime.
func FormatQuietResult(p int) string {
	return strconv.Itoa(p)
}

// DisplayQuietResult prints the bare prime on its own line.
func DisplayQuietResult(out io.Writer, p int) {
	fmt.Fprintln(out, FormatQuietResult(p))
}

// DisplayResultWithConfig prints a successful result according to cfg and
// saves it when cfg.OutputFile is set.
func DisplayResultWithConfig(out io.Writer, p, n int, duration time.Duration, algo string, cfg OutputConfig) error {
	if cfg.Quiet {
		DisplayQuietResult(out, p)
	} else {
		DisplayResult(out, p, n, duration)
		if cfg.Details {
			DisplayDetails(out, n, cfg.Options, duration)
		}
		if cfg.TimeLimit > 0 {
			DisplayTimeCheck(out, EvaluateTime(duration, cfg.TimeLimit))
		}
	}

	if cfg.OutputFile != "" {
		if err := WriteResultToFile(p, n, duration, algo, cfg); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ColorGreen(), ColorCyan(), cfg.OutputFile, ColorReset())
		}
	}
	return nil
}

// JSONResult is one calculator's outcome in -json output.
type JSONResult struct {
	Algorithm string `json:"algorithm"`
	N         int    `json:"n"`
	Prime     int    `json:"prime,omitempty"`
	Duration  string `json:"duration"`
	Seconds   string `json:"seconds"`
	TimeCheck string `json:"time_check,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewJSONResult fills a JSONResult. err, when non-nil, replaces the prime.
func NewJSONResult(algo string, n, p int, duration, timeLimit time.Duration, err error) JSONResult {
	jr := JSONResult{
		Algorithm: algo,
		N:         n,
		Duration:  duration.String(),
		Seconds:   strconv.FormatFloat(duration.Seconds(), 'f', 3, 64),
	}
	if err != nil {
		jr.Error = err.Error()
		return jr
	}
	jr.Prime = p
	if timeLimit > 0 {
		jr.TimeCheck = EvaluateTime(duration, timeLimit).String()
	}
	return jr
}

// WriteJSONResults encodes results as an indented JSON array.
func WriteJSONResults(out io.Writer, results []JSONResult) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

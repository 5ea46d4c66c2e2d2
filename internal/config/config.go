// Package config parses and validates the primecalc command line. Values
// resolve in the order flags, then PRIMECALC_* environment variables, then
// the defaults below.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/logging"
	"github.com/agbru/primecalc/internal/prime"
	"github.com/agbru/primecalc/internal/ui"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PRIMECALC_"

// Defaults.
const (
	// DefaultN of 0 asks for the index interactively.
	DefaultN = 0
	// DefaultAlgo runs the adaptive sieve only.
	DefaultAlgo = "sieve"
	// DefaultTimeout bounds a whole run.
	DefaultTimeout = 1 * time.Minute
	// DefaultTimeLimit is the soft threshold behind the "Time Check" verdict.
	DefaultTimeLimit = 3 * time.Second
	// DefaultLogLevel keeps diagnostics quiet unless something goes wrong.
	DefaultLogLevel = "warn"
	// DefaultTheme is used when NO_COLOR is unset.
	DefaultTheme = "dark"
)

// AppConfig is the parsed command line.
type AppConfig struct {
	// N is the 1-based index of the prime to find; 0 means prompt for it.
	N int
	// Algo is "all" or a registered calculator name.
	Algo string
	// Timeout cancels the run when it expires.
	Timeout time.Duration
	// TimeLimit separates a "Pass" from a "Fail" time check. It never
	// interrupts a calculation.
	TimeLimit time.Duration
	// MinLimit and FallbackLimit override the sieve bound policy; zero keeps
	// the library defaults.
	MinLimit      int
	FallbackLimit int

	JSONOutput  bool
	Quiet       bool
	Details     bool
	NoColor     bool
	Theme       string
	NoBanner    bool
	Interactive bool
	// Completion names a shell; when set, the script is printed and the
	// program exits.
	Completion string
	// OutputFile receives the result in addition to stdout.
	OutputFile string
	// MetricsFile receives the Prometheus registry in textfile format.
	MetricsFile string
	LogLevel    string
}

// ToCalculationOptions maps the sieve overrides onto prime.Options.
func (c AppConfig) ToCalculationOptions() prime.Options {
	return prime.Options{
		MinLimit:      c.MinLimit,
		FallbackLimit: c.FallbackLimit,
	}
}

// Validate checks value ranges and names. availableAlgos lists the
// registered calculators; "all" is always accepted.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.TimeLimit <= 0 {
		return apperrors.NewConfigError("time limit must be strictly positive")
	}
	if c.N < 0 {
		return apperrors.NewConfigError("n must be >= 1 (or 0 to be prompted), got %d", c.N)
	}
	if c.MinLimit < 0 {
		return apperrors.NewConfigError("minimum sieve limit cannot be negative: %d", c.MinLimit)
	}
	if c.FallbackLimit < 0 {
		return apperrors.NewConfigError("fallback sieve limit cannot be negative: %d", c.FallbackLimit)
	}
	if c.FallbackLimit > prime.MaxLimit || c.MinLimit > prime.MaxLimit {
		return apperrors.NewConfigError("sieve limits cannot exceed %d", prime.MaxLimit)
	}
	if c.Algo != "all" && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if _, ok := ui.ThemeByName(c.Theme); !ok {
		return apperrors.NewConfigError("unknown theme '%s'. Valid themes are: [%s]", c.Theme, strings.Join(ui.ThemeNames(), ", "))
	}
	return nil
}

// ParseConfig parses args (without the program name) into an AppConfig,
// applies environment overrides and validates the result. Usage and
// validation messages are written to errorWriter.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Algorithm to use: 'all' or one of [%s].", strings.Join(availableAlgos, ", "))

	config := AppConfig{}
	fs.IntVar(&config.N, "n", DefaultN, "Index n of the prime to find (0 prompts for it).")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the run.")
	fs.DurationVar(&config.TimeLimit, "time-limit", DefaultTimeLimit, "Elapsed time under which the time check passes.")
	fs.IntVar(&config.MinLimit, "min-limit", 0, "Smallest sieve bound to try (0 uses the built-in floor).")
	fs.IntVar(&config.FallbackLimit, "fallback-limit", 0, "Sieve bound used when the estimate is unusable (0 uses the built-in value).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.Details, "d", false, "Display sieve and timing details.")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.Theme, "theme", DefaultTheme, "Color theme: dark, light or none.")
	fs.BoolVar(&config.NoBanner, "no-banner", false, "Do not print the startup banner.")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - print only the prime.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start in interactive REPL mode.")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script (bash, zsh, fish, powershell).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level: debug, info, warn, error or disabled.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	config.Theme = strings.ToLower(config.Theme)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.Join(errors.New("invalid configuration"), err)
	}
	return config, nil
}

package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agbru/primecalc/internal/cli"
	"github.com/agbru/primecalc/internal/config"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/logging"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/prime"
	"github.com/agbru/primecalc/internal/ui"
)

// Application is one invocation of primecalc: a parsed configuration and
// the calculators it can run.
type Application struct {
	// Config holds the parsed command line.
	Config config.AppConfig
	// Factory resolves algorithm names to calculators.
	Factory prime.CalculatorFactory
	// ErrWriter receives diagnostics (typically os.Stderr).
	ErrWriter io.Writer
	// In is read when n has to be prompted for, and by the REPL.
	In io.Reader
	// Logger receives structured diagnostics. It defaults to a no-op.
	Logger logging.Logger
}

// New parses args (program name first) into an Application using the
// global calculator factory. Parse and validation errors are returned
// unchanged; see IsHelpError.
func New(args []string, errWriter io.Writer) (*Application, error) {
	factory := prime.GlobalFactory()

	programName := "primecalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, factory.List())
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Factory:   factory,
		ErrWriter: errWriter,
		In:        os.Stdin,
		Logger:    logging.Nop(),
	}, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor, a.Config.Theme)

	var code int
	if a.Config.Interactive {
		code = a.runREPL(ctx, out)
	} else {
		code = a.runCalculate(ctx, out)
	}
	return a.writeMetrics(code)
}

func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.errWriter(), "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

func (a *Application) runREPL(ctx context.Context, out io.Writer) int {
	ctx, stop := SetupSignals(ctx)
	defer stop()

	repl := cli.NewREPL(a.Factory.GetAll(), cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		Timeout:     a.Config.Timeout,
		TimeLimit:   a.Config.TimeLimit,
		Options:     a.Config.ToCalculationOptions(),
	})
	repl.SetInput(a.input())
	repl.SetOutput(out)
	repl.SetLogger(a.logger())
	repl.Start(ctx)
	return apperrors.ExitSuccess
}

// runCalculate is the single-shot mode: banner, prompt when -n is absent,
// then one run of the selected calculators.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	machine := a.Config.JSONOutput || a.Config.Quiet
	if !machine && !a.Config.NoBanner {
		cli.PrintBanner(out)
	}

	if a.Config.N == 0 {
		promptOut := out
		if machine {
			promptOut = a.errWriter()
		}
		n, err := cli.PromptForN(a.input(), promptOut)
		if err != nil {
			fmt.Fprintf(a.errWriter(), "\nNo index entered: %v\n", err)
			return apperrors.ExitErrorInvalidInput
		}
		a.Config.N = n
	}

	ctx, lifecycle := SetupLifecycle(ctx, a.Config.Timeout)
	defer lifecycle.Cleanup()

	calculators := cli.GetCalculatorsToRun(a.Config, a.Factory)
	if len(calculators) == 0 {
		fmt.Fprintf(a.errWriter(), "No calculator available for algorithm '%s'.\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	progressOut := out
	if machine {
		progressOut = io.Discard
	} else {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(calculators, out)
	}

	a.logger().Debug("starting run",
		logging.Int("n", a.Config.N),
		logging.String("algo", a.Config.Algo),
		logging.Int("calculators", len(calculators)))

	results := orchestration.ExecuteCalculations(ctx, calculators, a.Config, progressOut)
	for _, res := range results {
		if res.Err != nil {
			a.logger().Warn("calculation failed", logging.String("algorithm", res.Name), logging.Err(res.Err))
		}
	}

	if a.Config.JSONOutput {
		return a.printJSONResults(results, out)
	}
	return orchestration.AnalyzeComparisonResults(results, a.Config, out)
}

// printJSONResults encodes results and derives the exit code the same way
// the text report does, without printing the status lines.
func (a *Application) printJSONResults(results []orchestration.CalculationResult, out io.Writer) int {
	output := make([]cli.JSONResult, len(results))
	for i, res := range results {
		output[i] = cli.NewJSONResult(res.Name, a.Config.N, res.Prime, res.Duration, a.Config.TimeLimit, res.Err)
	}
	if err := cli.WriteJSONResults(out, output); err != nil {
		fmt.Fprintf(a.errWriter(), "Error encoding JSON: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	var firstErr error
	first, found := 0, false
	for _, res := range results {
		switch {
		case res.Err != nil:
			if firstErr == nil {
				firstErr = res.Err
			}
		case !found:
			first, found = res.Prime, true
		case res.Prime != first:
			return apperrors.ExitErrorMismatch
		}
	}
	if !found {
		return apperrors.HandleCalculationError(firstErr, 0, io.Discard, nil)
	}
	return apperrors.ExitSuccess
}

// writeMetrics exports the calculator metrics when -metrics-file is set.
// A write failure turns a successful exit code into a generic failure.
func (a *Application) writeMetrics(code int) int {
	if a.Config.MetricsFile == "" {
		return code
	}
	if err := prime.WriteMetrics(a.Config.MetricsFile); err != nil {
		outErr := apperrors.NewOutputError(a.Config.MetricsFile, err)
		a.logger().Error("metrics export failed", outErr)
		fmt.Fprintf(a.errWriter(), "Error: %v\n", outErr)
		if code == apperrors.ExitSuccess {
			return apperrors.ExitErrorGeneric
		}
	}
	return code
}

func (a *Application) errWriter() io.Writer {
	if a.ErrWriter == nil {
		return os.Stderr
	}
	return a.ErrWriter
}

func (a *Application) input() io.Reader {
	if a.In == nil {
		return os.Stdin
	}
	return a.In
}

func (a *Application) logger() logging.Logger {
	if a.Logger == nil {
		return logging.Nop()
	}
	return a.Logger
}

// IsHelpError reports whether err comes from -h or -help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForError maps an error returned by New to an exit code.
func ExitCodeForError(err error) int {
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	return apperrors.ExitErrorConfig
}

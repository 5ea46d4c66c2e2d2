package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/agbru/primecalc/internal/logging"
	"github.com/agbru/primecalc/internal/prime"
)

// REPLConfig holds the settings of an interactive session.
type REPLConfig struct {
	// DefaultAlgo is the calculator used first; "" or "all" picks the first
	// registered name.
	DefaultAlgo string
	// Timeout bounds each calculation.
	Timeout time.Duration
	// TimeLimit drives the time check after each result; zero disables it.
	TimeLimit time.Duration
	// Options are passed to every calculation.
	Options prime.Options
}

// REPL is an interactive prime-finding session.
type REPL struct {
	config      REPLConfig
	registry    map[string]prime.Calculator
	names       []string
	currentAlgo string
	in          io.Reader
	out         io.Writer
	logger      logging.Logger
}

// NewREPL creates a session over registry, reading stdin and writing
// stdout.
func NewREPL(registry map[string]prime.Calculator, config REPLConfig) *REPL {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	currentAlgo := config.DefaultAlgo
	if _, ok := registry[currentAlgo]; !ok && len(names) > 0 {
		currentAlgo = names[0]
	}
	return &REPL{
		config:      config,
		registry:    registry,
		names:       names,
		currentAlgo: currentAlgo,
		in:          os.Stdin,
		out:         os.Stdout,
		logger:      logging.Nop(),
	}
}

// SetInput replaces the input reader.
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput replaces the output writer.
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// SetLogger sets the logger for failed calculations.
func (r *REPL) SetLogger(logger logging.Logger) { r.logger = logger }

// CurrentAlgorithm returns the registry key in use.
func (r *REPL) CurrentAlgorithm() string { return r.currentAlgo }

func (r *REPL) prompt() {
	fmt.Fprint(r.out, ColorGreen()+"prime> "+ColorReset())
}

// usage prints a red one-line message.
func (r *REPL) usage(format string, args ...any) {
	fmt.Fprintf(r.out, "%s%s%s\n", ColorRed(), fmt.Sprintf(format, args...), ColorReset())
}

// Start runs the read-eval-print loop until "exit", end of input, or
// cancellation of ctx. Each calculation derives its deadline from ctx.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		if ctx.Err() != nil {
			fmt.Fprintf(r.out, "\n%sInterrupted.%s\n", ColorYellow(), ColorReset())
			return
		}
		r.prompt()

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			r.usage("Read error: %v", err)
			return
		}
		eof := errors.Is(err, io.EOF)

		if line := strings.TrimSpace(input); line != "" {
			if !r.processCommand(ctx, line) {
				return
			}
		}
		if eof {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔════════════════════════════════════════════════╗%s\n", ColorCyan(), ColorReset())
	fmt.Fprintf(r.out, "%s║%s   %sNth Prime Solver - Interactive Mode%s          %s║%s\n",
		ColorCyan(), ColorReset(), ColorBold(), ColorReset(), ColorCyan(), ColorReset())
	fmt.Fprintf(r.out, "%s╚════════════════════════════════════════════════╝%s\n\n", ColorCyan(), ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ColorBold(), ColorReset())
	fmt.Fprintf(r.out, "  %sfind <n>%s      - Find the n-th prime with the current algorithm\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %s<n>%s           - Shorthand for find <n>\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %salgo <name>%s   - Change algorithm (%s)\n", ColorYellow(), ColorReset(), strings.Join(r.names, ", "))
	fmt.Fprintf(r.out, "  %scompare <n>%s   - Run every algorithm for n and check they agree\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %slist%s          - List available algorithms\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s        - Display current configuration\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ColorYellow(), ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s  - Exit interactive mode\n", ColorYellow(), ColorReset(), ColorYellow(), ColorReset())
}

// processCommand executes one line. It returns false to end the session.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "find", "f":
		if n, ok := r.indexArg("find", args); ok {
			r.find(ctx, n)
		}
	case "algo", "a":
		r.cmdAlgo(args)
	case "compare", "cmp":
		if n, ok := r.indexArg("compare", args); ok {
			r.compare(ctx, n)
		}
	case "list", "ls":
		r.cmdList()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ColorGreen(), ColorReset())
		return false
	default:
		if _, err := strconv.Atoi(cmd); err == nil {
			if n, ok := r.indexArg("find", []string{cmd}); ok {
				r.find(ctx, n)
			}
			return true
		}
		r.usage("Unknown command: %s", cmd)
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ColorYellow(), ColorReset())
	}
	return true
}

// indexArg parses the single integer argument of cmd.
func (r *REPL) indexArg(cmd string, args []string) (int, bool) {
	if len(args) == 0 {
		r.usage("Usage: %s <n>", cmd)
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		r.usage("%s is not a valid number.  Please try again.", args[0])
		return 0, false
	}
	if n < 1 {
		r.usage("%s is not a valid number. Please enter an integer greater than or equal to 1.", args[0])
		return 0, false
	}
	return n, true
}

// find runs the current calculator for n with a live progress bar.
func (r *REPL) find(ctx context.Context, n int) {
	calc, ok := r.registry[r.currentAlgo]
	if !ok {
		r.usage("Algorithm not found: %s", r.currentAlgo)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	fmt.Fprintf(r.out, "Finding the %s%s%s-th prime with %s%s%s...\n",
		ColorMagenta(), formatNumber(n), ColorReset(), ColorCyan(), calc.Name(), ColorReset())

	progressChan := make(chan prime.ProgressUpdate, 10)
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 1, r.out)

	start := time.Now()
	p, err := calc.Calculate(ctx, progressChan, 0, n, r.config.Options)
	elapsed := time.Since(start)
	close(progressChan)
	wg.Wait()

	if err != nil {
		r.logger.Warn("repl calculation failed", logging.String("algorithm", calc.Name()), logging.Int("n", n), logging.Err(err))
		r.usage("Error: %v", err)
		return
	}

	DisplayResult(r.out, p, n, elapsed)
	if r.config.TimeLimit > 0 {
		DisplayTimeCheck(r.out, EvaluateTime(elapsed, r.config.TimeLimit))
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		r.usage("Usage: algo <name>")
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(r.names, ", "))
		return
	}
	name := strings.ToLower(args[0])
	calc, ok := r.registry[name]
	if !ok {
		r.usage("Unknown algorithm: %s", name)
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(r.names, ", "))
		return
	}
	r.currentAlgo = name
	fmt.Fprintf(r.out, "Algorithm changed to: %s%s%s\n", ColorGreen(), calc.Name(), ColorReset())
}

// compare runs every calculator in name order and flags disagreements
// with the first successful result.
func (r *REPL) compare(ctx context.Context, n int) {
	fmt.Fprintf(r.out, "\n%sComparison for n = %s:%s\n", ColorBold(), formatNumber(n), ColorReset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ColorCyan(), ColorReset())

	first, haveFirst := 0, false
	for _, name := range r.names {
		calc := r.registry[name]
		calcCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
		start := time.Now()
		p, err := calc.Calculate(calcCtx, nil, 0, n, r.config.Options)
		elapsed := time.Since(start)
		cancel()

		if err != nil {
			fmt.Fprintf(r.out, "  %s%-10s%s: %sError - %v%s\n",
				ColorYellow(), name, ColorReset(), ColorRed(), err, ColorReset())
			continue
		}
		if !haveFirst {
			first, haveFirst = p, true
		}
		status := ColorGreen() + "✓" + ColorReset()
		if p != first {
			status = ColorRed() + "✗ INCONSISTENT" + ColorReset()
		}
		fmt.Fprintf(r.out, "  %s%-10s%s: %s%12s%s %s%d%s %s\n",
			ColorYellow(), name, ColorReset(),
			ColorCyan(), FormatExecutionDuration(elapsed), ColorReset(),
			ColorGreen(), p, ColorReset(), status)
	}
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n\n", ColorCyan(), ColorReset())
}

func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable algorithms:%s\n", ColorBold(), ColorReset())
	for _, name := range r.names {
		marker := "  "
		if name == r.currentAlgo {
			marker = ColorGreen() + "► " + ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%-10s%s - %s\n", marker, ColorYellow(), name, ColorReset(), r.registry[name].Name())
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ColorBold(), ColorReset())
	fmt.Fprintf(r.out, "  Algorithm:      %s%s%s\n", ColorCyan(), r.currentAlgo, ColorReset())
	fmt.Fprintf(r.out, "  Timeout:        %s%s%s\n", ColorCyan(), r.config.Timeout, ColorReset())
	fmt.Fprintf(r.out, "  Time check:     %s%s%s\n", ColorCyan(), r.config.TimeLimit, ColorReset())
	fmt.Fprintf(r.out, "  Min limit:      %s%s%s\n", ColorCyan(), limitOrDefault(r.config.Options.MinLimit, prime.MinLimit), ColorReset())
	fmt.Fprintf(r.out, "  Fallback limit: %s%s%s\n", ColorCyan(), limitOrDefault(r.config.Options.FallbackLimit, prime.FallbackLimit), ColorReset())
	fmt.Fprintln(r.out)
}

func limitOrDefault(v, def int) string {
	if v <= 0 {
		return formatNumber(def) + " (default)"
	}
	return formatNumber(v)
}

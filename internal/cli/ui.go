// Package cli implements the terminal front end of primecalc: the banner,
// the interactive prompt, the progress spinner, result and time-check
// output, shell completion and the REPL.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/agbru/primecalc/internal/prime"
	"github.com/agbru/primecalc/internal/ui"
	"github.com/briandowns/spinner"
)

const (
	// ProgressRefreshRate is how often the spinner line is redrawn.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width of the bar in characters.
	ProgressBarWidth = 40
)

// FormatExecutionDuration renders d in µs below a millisecond, in ms below
// a second, and with time.Duration.String otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Theme shortcuts.
func ColorReset() string   { return ui.ColorReset() }
func ColorRed() string     { return ui.ColorRed() }
func ColorGreen() string   { return ui.ColorGreen() }
func ColorYellow() string  { return ui.ColorYellow() }
func ColorMagenta() string { return ui.ColorMagenta() }
func ColorCyan() string    { return ui.ColorCyan() }
func ColorBold() string    { return ui.ColorBold() }

// Spinner is the subset of a terminal spinner DisplayProgress drives.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is replaced in tests.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState tracks the latest progress value of each running
// calculator.
type ProgressState struct {
	progresses []float64
}

// NewProgressState tracks numCalculators calculators, all at 0.
func NewProgressState(numCalculators int) *ProgressState {
	if numCalculators < 0 {
		numCalculators = 0
	}
	return &ProgressState{progresses: make([]float64, numCalculators)}
}

// Update records value for calculator index. Out-of-range indices are
// ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage returns the mean progress, or 0 with no calculators.
func (ps *ProgressState) CalculateAverage() float64 {
	if len(ps.progresses) == 0 {
		return 0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(len(ps.progresses))
}

// progressBar draws progress (clamped to [0,1]) as length block runes.
func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

func progressLabel(numCalculators int) string {
	if numCalculators > 1 {
		return "Avg progress"
	}
	return "Progress"
}

// DisplayProgress renders a spinner and progress bar on out until
// progressChan is closed, then prints a final 100% line. It calls wg.Done
// on return. With numCalculators <= 0 it only drains the channel.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan prime.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()
	if numCalculators <= 0 {
		for range progressChan {
		}
		return
	}

	state := NewProgressWithETA(numCalculators)
	label := progressLabel(numCalculators)
	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	spinnerStopped := false
	defer func() {
		if !spinnerStopped {
			s.Stop()
		}
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				spinnerStopped = true
				fmt.Fprintf(out, "%s: %s\n", label, FormatProgressBarWithETA(1.0, time.Nanosecond, ProgressBarWidth))
				return
			}
			state.UpdateWithETA(update.CalculatorIndex, update.Value)
		case <-ticker.C:
			s.UpdateSuffix(fmt.Sprintf(" %s: %s", label,
				FormatProgressBarWithETA(state.CalculateAverage(), state.GetETA(), ProgressBarWidth)))
		}
	}
}

// formatNumber inserts thousands separators: 1299709 -> "1,299,709".
func formatNumber(v int) string {
	s := strconv.Itoa(v)
	prefix := ""
	if s[0] == '-' {
		prefix, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return prefix + s
	}

	var builder strings.Builder
	builder.Grow(len(prefix) + n + (n-1)/3)
	builder.WriteString(prefix)
	first := n % 3
	if first == 0 {
		first = 3
	}
	builder.WriteString(s[:first])
	for i := first; i < n; i += 3 {
		builder.WriteByte(',')
		builder.WriteString(s[i : i+3])
	}
	return builder.String()
}

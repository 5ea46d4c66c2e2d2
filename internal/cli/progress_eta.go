package cli

import (
	"fmt"
	"time"
)

const (
	// etaWarmup is the minimum elapsed time before an ETA is offered.
	etaWarmup = 100 * time.Millisecond
	// etaSampleGap is the minimum time between two rate samples.
	etaSampleGap = 50 * time.Millisecond
	// etaSmoothing weights the previous rate in the exponential average.
	etaSmoothing = 0.7
	// etaCap bounds the reported estimate.
	etaCap = 24 * time.Hour
)

// ProgressWithETA adds a smoothed remaining-time estimate to ProgressState.
// The sieve reports progress once per attempt, so early estimates are coarse
// and usually redundant; they matter for trial division on large n.
type ProgressWithETA struct {
	*ProgressState
	now          func() time.Time
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64 // progress per second
}

// NewProgressWithETA tracks numCalculators calculators from now.
func NewProgressWithETA(numCalculators int) *ProgressWithETA {
	return newProgressWithClock(numCalculators, time.Now)
}

func newProgressWithClock(numCalculators int, now func() time.Time) *ProgressWithETA {
	start := now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numCalculators),
		now:           now,
		startTime:     start,
		lastUpdate:    start,
	}
}

// UpdateWithETA records value for calculator index and returns the new
// average with its estimated remaining time (0 while warming up).
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (progress float64, eta time.Duration) {
	p.Update(index, value)
	progress = p.CalculateAverage()

	now := p.now()
	elapsed := now.Sub(p.startTime)
	if elapsed < etaWarmup || progress <= 0.001 {
		p.lastUpdate = now
		p.lastProgress = progress
		return progress, 0
	}

	if gap := now.Sub(p.lastUpdate); gap > etaSampleGap {
		if delta := progress - p.lastProgress; delta > 0 {
			instant := delta / gap.Seconds()
			if p.progressRate > 0 {
				p.progressRate = etaSmoothing*p.progressRate + (1-etaSmoothing)*instant
			} else {
				p.progressRate = progress / elapsed.Seconds()
			}
		}
		p.lastUpdate = now
		p.lastProgress = progress
	}
	return progress, p.GetETA()
}

// GetETA returns the remaining time at the current rate, or 0 if unknown
// or complete.
func (p *ProgressWithETA) GetETA() time.Duration {
	progress := p.CalculateAverage()
	if p.progressRate <= 0 || progress >= 1.0 {
		return 0
	}
	eta := time.Duration((1.0 - progress) / p.progressRate * float64(time.Second))
	return min(eta, etaCap)
}

// FormatETA renders eta as "calculating...", "< 1s", "42s", "2m30s" or
// "1h15m".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		minutes := int(eta.Minutes())
		if seconds := int(eta.Seconds()) % 60; seconds > 0 {
			return fmt.Sprintf("%dm%ds", minutes, seconds)
		}
		return fmt.Sprintf("%dm", minutes)
	}
	hours := int(eta.Hours())
	if minutes := int(eta.Minutes()) % 60; minutes > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatProgressBarWithETA renders "45.00% [████░░░░] ETA: 2m30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("%6.2f%% [%s] ETA: %s", progress*100, progressBar(progress, width), FormatETA(eta))
}

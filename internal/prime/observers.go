package prime

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// ChannelObserver forwards progress to a channel consumed by the UI.
type ChannelObserver struct {
	channel chan<- ProgressUpdate
}

// NewChannelObserver returns an observer sending on ch. A nil ch discards
// updates.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{channel: ch}
}

// Update sends without blocking; when the channel is full the update is
// dropped and the UI catches up on the next one.
func (o *ChannelObserver) Update(calcIndex int, progress float64) {
	if o.channel == nil {
		return
	}
	if progress > 1.0 {
		progress = 1.0
	}

	select {
	case o.channel <- ProgressUpdate{CalculatorIndex: calcIndex, Value: progress}:
	default:
	}
}

// LoggingObserver logs progress at debug level, throttled by threshold.
type LoggingObserver struct {
	logger    zerolog.Logger
	threshold float64
	lastLog   map[int]float64
	mu        sync.Mutex
}

// NewLoggingObserver logs whenever progress moves by at least threshold
// (default 0.1).
func NewLoggingObserver(logger zerolog.Logger, threshold float64) *LoggingObserver {
	if threshold <= 0 {
		threshold = 0.1
	}
	return &LoggingObserver{
		logger:    logger,
		threshold: threshold,
		lastLog:   make(map[int]float64),
	}
}

// Update logs the first update, completion, and significant changes.
func (o *LoggingObserver) Update(calcIndex int, progress float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	lastProgress, seen := o.lastLog[calcIndex]
	shouldLog := progress >= 1.0 ||
		!seen ||
		progress-lastProgress >= o.threshold

	if shouldLog {
		o.logger.Debug().
			Int("calculator", calcIndex).
			Float64("progress", progress).
			Str("percent", fmt.Sprintf("%.1f%%", progress*100)).
			Msg("calculation progress")
		o.lastLog[calcIndex] = progress
	}
}

// MetricsObserver mirrors progress into the primecalc_calculation_progress
// gauge.
type MetricsObserver struct {
	gauge *prometheus.GaugeVec
}

// NewMetricsObserver returns an observer backed by the package registry.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{gauge: progressGauge}
}

// Update sets the gauge for calcIndex.
func (o *MetricsObserver) Update(calcIndex int, progress float64) {
	o.gauge.WithLabelValues(strconv.Itoa(calcIndex)).Set(progress)
}

// ResetMetrics drops the series of a previous batch so indexes that are
// not reused do not linger in the export.
func (o *MetricsObserver) ResetMetrics() {
	o.gauge.Reset()
}

package prime

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func TestProgressSubject(t *testing.T) {
	t.Parallel()
	subject := NewProgressSubject()
	a, b := &recordingObserver{}, &recordingObserver{}

	subject.Register(a)
	subject.Register(b)
	subject.Register(nil)

	subject.Notify(0, 0.5)
	subject.AsProgressReporter(0)(1.0)

	for name, obs := range map[string]*recordingObserver{"first": a, "second": b} {
		if got := obs.values(); len(got) != 2 || got[0] != 0.5 || got[1] != 1.0 {
			t.Errorf("%s observer saw %v, want [0.5 1]", name, got)
		}
	}
}

func TestChannelObserver(t *testing.T) {
	t.Parallel()

	t.Run("clamps and forwards", func(t *testing.T) {
		t.Parallel()
		ch := make(chan ProgressUpdate, 1)
		NewChannelObserver(ch).Update(3, 1.5)
		u := <-ch
		if u.CalculatorIndex != 3 || u.Value != 1.0 {
			t.Errorf("got %+v, want {3 1}", u)
		}
	})

	t.Run("does not block when full", func(t *testing.T) {
		t.Parallel()
		ch := make(chan ProgressUpdate)
		NewChannelObserver(ch).Update(0, 0.2)
	})

	t.Run("nil channel", func(t *testing.T) {
		t.Parallel()
		NewChannelObserver(nil).Update(0, 0.2)
	})
}

func TestLoggingObserver(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	obs := NewLoggingObserver(logger, 0.25)

	for _, p := range []float64{0.0, 0.1, 0.2, 0.3, 0.6, 1.0} {
		obs.Update(1, p)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// 0.0 (first), 0.3, 0.6, 1.0
	if len(lines) != 4 {
		t.Fatalf("logged %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"calculator":1`) || !strings.Contains(lines[0], "calculation progress") {
		t.Errorf("unexpected log line: %s", lines[0])
	}

	if NewLoggingObserver(logger, 0).threshold != 0.1 {
		t.Error("non-positive threshold should default to 0.1")
	}
}

func TestMetricsObserver(t *testing.T) {
	t.Parallel()
	obs := NewMetricsObserver()
	obs.Update(41, 0.75)
	if got := testutil.ToFloat64(progressGauge.WithLabelValues("41")); got != 0.75 {
		t.Errorf("gauge = %f, want 0.75", got)
	}
}

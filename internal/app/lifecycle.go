package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// SetupSignals returns a context canceled on SIGINT or SIGTERM.
func SetupSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}

// Lifecycle holds the cancel functions of a single-shot run.
type Lifecycle struct {
	cancelTimeout context.CancelFunc
	stopSignals   context.CancelFunc
}

// SetupLifecycle derives a context that ends at timeout or on the first
// termination signal, whichever comes first. Call Cleanup when done.
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, *Lifecycle) {
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	ctx, stopSignals := SetupSignals(ctx)
	return ctx, &Lifecycle{cancelTimeout: cancelTimeout, stopSignals: stopSignals}
}

// Cleanup stops signal delivery and releases the timer.
func (l *Lifecycle) Cleanup() {
	if l.stopSignals != nil {
		l.stopSignals()
	}
	if l.cancelTimeout != nil {
		l.cancelTimeout()
	}
}

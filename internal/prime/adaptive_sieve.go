package prime

import (
	"context"

	"github.com/rs/zerolog/log"
)

// AdaptiveSieve sieves up to an analytic upper bound on the n-th prime and
// re-sieves with a larger bound if the estimate undershoots.
//
// The core is synchronous: once a sieve pass starts it runs to completion,
// so ctx is only consulted by the decorator before the first pass.
type AdaptiveSieve struct{}

// Name returns the display name of the algorithm.
func (s *AdaptiveSieve) Name() string {
	return "Adaptive Sieve"
}

// CalculateCore runs Search and records how many passes it needed.
func (s *AdaptiveSieve) CalculateCore(_ context.Context, reporter ProgressReporter, n int, opts Options) (int, error) {
	res, err := Search(n, opts, reporter)
	if res.Attempts > 0 {
		sieveAttempts.Observe(float64(res.Attempts))
	}
	log.Debug().
		Int("n", n).
		Int("initial_limit", res.InitialLimit).
		Int("limit", res.Limit).
		Int("attempts", res.Attempts).
		Bool("estimated", res.Estimated).
		Msg("sieve search finished")
	if err != nil {
		return 0, err
	}
	return res.Prime, nil
}

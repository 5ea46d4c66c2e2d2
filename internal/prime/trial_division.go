package prime

import "context"

const (
	// trialCheckInterval is how many candidates are tested between
	// context checks.
	trialCheckInterval = 1 << 14
	// trialReportInterval is how many primes are found between progress
	// reports.
	trialReportInterval = 1 << 10
	// trialCapacityHint caps the initial prime buffer; append grows it.
	trialCapacityHint = 1 << 16
)

// TrialDivision walks odd candidates and tests each against the primes found
// so far, up to its square root. It shares no code with the sieve and is
// used to cross-check it.
type TrialDivision struct{}

// Name returns the display name of the algorithm.
func (t *TrialDivision) Name() string {
	return "Trial Division"
}

// CalculateCore returns the n-th prime. It stops early if ctx is done.
func (t *TrialDivision) CalculateCore(ctx context.Context, reporter ProgressReporter, n int, opts Options) (int, error) {
	if n < 1 {
		return 0, &InvalidArgumentError{N: n}
	}
	if reporter == nil {
		reporter = func(float64) {}
	}
	if n == 1 {
		return 2, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	// Odd primes only; 2 is counted implicitly.
	primes := make([]int, 0, min(n, trialCapacityHint))
	found := 1
	for candidate := 3; ; candidate += 2 {
		if candidate%trialCheckInterval == 1 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if !dividesAny(candidate, primes) {
			primes = append(primes, candidate)
			found++
			if found == n {
				return candidate, nil
			}
			if found%trialReportInterval == 0 {
				reporter(progressFraction(found, n))
			}
		}
	}
}

// dividesAny reports whether any prime p <= sqrt(v) in primes divides v.
func dividesAny(v int, primes []int) bool {
	for _, p := range primes {
		if p > v/p {
			return false
		}
		if v%p == 0 {
			return true
		}
	}
	return false
}

package prime

// SearchResult describes how an n-th prime was found.
type SearchResult struct {
	// Prime is the n-th prime.
	Prime int
	// InitialLimit is the first sieve bound tried.
	InitialLimit int
	// Limit is the bound of the sieve that produced Prime.
	Limit int
	// Attempts counts sieve passes; it is 0 on the fast path.
	Attempts int
	// Estimated reports whether the analytic bound seeded the first attempt.
	// It is false on the fast path and when FallbackLimit was used.
	Estimated bool
}

// boundFunc chooses the first sieve bound for n and reports whether it is
// the analytic estimate.
type boundFunc func(n int, opts Options) (int, bool)

// FindNthPrime returns the n-th prime, 1-indexed (FindNthPrime(1) == 2),
// using the default sieve bounds.
//
// Parameters:
//   - n: The index of the prime; it must be at least 1.
//
// Returns:
//   - int: The n-th prime.
//   - error: An *InvalidArgumentError when n < 1, or ErrLimitOverflow if the
//     prime lies beyond MaxLimit.
func FindNthPrime(n int) (int, error) {
	res, err := Search(n, Options{}, nil)
	if err != nil {
		return 0, err
	}
	return res.Prime, nil
}

// Search finds the n-th prime and reports the sieve bounds it used.
//
// Each attempt sieves a fresh buffer. After an undershoot the limit grows
// by GrowthFactor and progress is reported as the fraction of primes found.
//
// Parameters:
//   - n: The index of the prime; it must be at least 1.
//   - opts: Sieve bound overrides.
//   - reporter: Receives progress in [0, 1); it may be nil.
//
// Returns:
//   - SearchResult: The prime together with the bounds and attempt count.
//   - error: An *InvalidArgumentError when n < 1, or ErrLimitOverflow once
//     the limit cannot grow further.
func Search(n int, opts Options, reporter ProgressReporter) (SearchResult, error) {
	return search(n, opts, InitialBound, reporter)
}

func search(n int, opts Options, bound boundFunc, reporter ProgressReporter) (SearchResult, error) {
	if n < 1 {
		return SearchResult{}, &InvalidArgumentError{N: n}
	}
	if reporter == nil {
		reporter = func(float64) {}
	}
	if n <= FastPathMax {
		p := smallPrimes[n-1]
		return SearchResult{Prime: p}, nil
	}

	limit, estimated := bound(n, opts)
	res := SearchResult{InitialLimit: limit, Estimated: estimated}
	for {
		res.Attempts++
		primes := CollectPrimes(Sieve(limit))
		if len(primes) >= n {
			res.Prime = primes[n-1]
			res.Limit = limit
			return res, nil
		}
		reporter(progressFraction(len(primes), n))

		next, err := GrowLimit(limit)
		if err != nil {
			res.Limit = limit
			return res, err
		}
		limit = next
	}
}

package prime

import "math"

// EstimateUpperBound returns trunc(n(ln n + ln ln n) + SafetyMargin), an
// upper bound on the n-th prime valid for n >= 6.
//
// ok is false when the estimate is not defined for n (ln ln n requires
// ln n > 0), or when the result is not a finite positive number that fits
// under MaxLimit.
func EstimateUpperBound(n int) (limit int, ok bool) {
	estimate, ok := rawEstimate(n)
	if !ok || estimate > MaxLimit {
		return 0, false
	}
	return int(estimate), true
}

// rawEstimate is the unclamped bound. ok is false when it is undefined or
// not a finite positive number.
func rawEstimate(n int) (float64, bool) {
	if n <= FastPathMax {
		return 0, false
	}
	dn := float64(n)
	ln := math.Log(dn)
	if !(ln > 0) {
		return 0, false
	}
	estimate := dn*(ln+math.Log(ln)) + SafetyMargin
	if math.IsNaN(estimate) || math.IsInf(estimate, 0) || estimate <= 0 {
		return 0, false
	}
	return estimate, true
}

// InitialBound picks the first sieve bound for n and reports whether it
// came from the analytic estimate.
//
// An estimate above MaxLimit is clamped to MaxLimit, since growth would
// stop there anyway. FallbackLimit is used only when the estimate is
// undefined. The result is never below the minimum limit.
//
// Parameters:
//   - n: The 1-based index of the prime.
//   - opts: Overrides for MinLimit and FallbackLimit; zero values keep the
//     defaults.
//
// Returns:
//   - int: The first sieve bound to try.
//   - bool: True if the analytic estimate seeded the bound.
func InitialBound(n int, opts Options) (limit int, estimated bool) {
	return initialBound(n, opts, rawEstimate)
}

func initialBound(n int, opts Options, estimate func(int) (float64, bool)) (int, bool) {
	opts = opts.normalize()
	limit, estimated := opts.FallbackLimit, false
	if est, ok := estimate(n); ok {
		limit, estimated = MaxLimit, true
		if est < MaxLimit {
			limit = int(est)
		}
	}
	if limit < opts.MinLimit {
		limit = opts.MinLimit
	}
	return limit, estimated
}

// InitialLimit is InitialBound without the provenance flag.
func InitialLimit(n int, opts Options) int {
	limit, _ := InitialBound(n, opts)
	return limit
}

// GrowLimit returns the next bound after an undershoot. The result is always
// strictly greater than limit; ErrLimitOverflow is returned once MaxLimit has
// been reached.
func GrowLimit(limit int) (int, error) {
	if limit >= MaxLimit {
		return limit, ErrLimitOverflow
	}
	if limit > MaxLimit/GrowthFactor {
		return MaxLimit, nil
	}
	if limit < 1 {
		return MinLimit, nil
	}
	return limit * GrowthFactor, nil
}

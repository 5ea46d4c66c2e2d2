package prime

// Bounds used by the adaptive sieve.
const (
	// FastPathMax is the largest n answered from smallPrimes without sieving.
	// The analytic bound only holds for n >= 6.
	FastPathMax = 5
	// SafetyMargin is added to the analytic estimate before truncation.
	SafetyMargin = 10
	// FallbackLimit replaces the estimate when it cannot be computed.
	FallbackLimit = 2_000_000
	// MinLimit is the smallest sieve the finder will allocate.
	MinLimit = 100
	// GrowthFactor multiplies the limit after an undershoot.
	GrowthFactor = 2
	// MaxLimit is the largest sieve bound the finder will allocate
	// (1 GiB of bool). It keeps index arithmetic inside int32 range.
	MaxLimit = 1 << 30
)

// smallPrimes holds the answers for n in [1, FastPathMax].
var smallPrimes = [FastPathMax]int{2, 3, 5, 7, 11}

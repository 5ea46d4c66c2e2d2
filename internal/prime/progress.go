package prime

// ProgressUpdate carries the progress of one calculator to the UI.
type ProgressUpdate struct {
	// CalculatorIndex identifies the calculator when several run together.
	CalculatorIndex int
	// Value is the normalized progress, from 0.0 to 1.0.
	Value float64
}

// ProgressReporter is the callback core algorithms use to report progress.
type ProgressReporter func(progress float64)

// maxPartialProgress is the highest value reported before the answer is known.
const maxPartialProgress = 0.99

// progressFraction converts the number of primes found so far into a
// progress value. It stays below 1.0 until the n-th prime is selected.
func progressFraction(found, n int) float64 {
	if n <= 0 {
		return 0
	}
	p := float64(found) / float64(n)
	if p > maxPartialProgress {
		p = maxPartialProgress
	}
	if p < 0 {
		p = 0
	}
	return p
}

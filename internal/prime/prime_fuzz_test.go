package prime

import (
	"context"
	"testing"
)

// FuzzSieveTrialConsistency verifies that the adaptive sieve and trial
// division agree on every index.
func FuzzSieveTrialConsistency(f *testing.F) {
	for _, n := range []int{-5, 0, 1, 5, 6, 7, 100, 1000, 4999} {
		f.Add(n)
	}

	f.Fuzz(func(t *testing.T, n int) {
		// Keep iterations quick.
		if n > 5000 {
			return
		}
		ctx := context.Background()
		sieve := NewCalculator(&AdaptiveSieve{})
		trial := NewCalculator(&TrialDivision{})

		ps, errS := sieve.Calculate(ctx, nil, 0, n, Options{})
		pt, errT := trial.Calculate(ctx, nil, 0, n, Options{})

		if n < 1 {
			if errS == nil || errT == nil {
				t.Fatalf("n=%d: expected both calculators to fail, got %v / %v", n, errS, errT)
			}
			return
		}
		if errS != nil || errT != nil {
			t.Fatalf("n=%d: unexpected errors %v / %v", n, errS, errT)
		}
		if ps != pt {
			t.Errorf("Inconsistent results for n=%d:\n  Sieve: %d\n  Trial: %d", n, ps, pt)
		}
	})
}

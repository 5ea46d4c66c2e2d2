package prime

import (
	"reflect"
	"testing"
)

func TestSieve(t *testing.T) {
	t.Parallel()
	tests := []struct {
		limit int
		want  []int
	}{
		{-1, nil},
		{0, nil},
		{1, nil},
		{2, []int{2}},
		{10, []int{2, 3, 5, 7}},
		{30, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
		{49, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}},
	}

	for _, tt := range tests {
		got := CollectPrimes(Sieve(tt.limit))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("primes up to %d = %v, want %v", tt.limit, got, tt.want)
		}
	}
}

func TestSieveBufferSize(t *testing.T) {
	t.Parallel()
	buf := Sieve(100)
	if len(buf) != 101 {
		t.Fatalf("len(Sieve(100)) = %d, want 101", len(buf))
	}
	if buf[0] || buf[1] {
		t.Error("0 and 1 must not be marked prime")
	}
	if !buf[97] || buf[100] {
		t.Error("97 should be prime and 100 composite")
	}
}

func TestSieveMatchesTrialDivision(t *testing.T) {
	t.Parallel()
	const limit = 5000
	buf := Sieve(limit)
	for i := 0; i <= limit; i++ {
		if buf[i] != IsPrime(i) {
			t.Fatalf("Sieve and IsPrime disagree at %d: sieve=%v trial=%v", i, buf[i], IsPrime(i))
		}
	}
}

func TestPrimeCountCheckpoints(t *testing.T) {
	t.Parallel()
	tests := []struct {
		limit int
		count int
	}{
		{100, 25},
		{1000, 168},
		{10_000, 1229},
		{100_000, 9592},
		{1_000_000, 78498},
	}
	for _, tt := range tests {
		if got := len(CollectPrimes(Sieve(tt.limit))); got != tt.count {
			t.Errorf("pi(%d) = %d, want %d", tt.limit, got, tt.count)
		}
	}
}

func TestIsPrime(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v    int
		want bool
	}{
		{-7, false}, {0, false}, {1, false}, {2, true}, {3, true}, {4, false},
		{9, false}, {25, false}, {97, true}, {541, true}, {7919, true},
		{7921, false}, {104729, true}, {1999993, true}, {1999995, false},
	}
	for _, tt := range tests {
		if got := IsPrime(tt.v); got != tt.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

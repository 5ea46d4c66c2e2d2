package prime

// Sieve returns a buffer of limit+1 flags where isPrime[i] reports whether i
// is prime, for 0 <= i <= limit. Multiples of each surviving i are struck
// from i*i upwards; smaller multiples were already removed by smaller factors.
func Sieve(limit int) []bool {
	if limit < 0 {
		return nil
	}
	isPrime := make([]bool, limit+1)
	for i := 2; i <= limit; i++ {
		isPrime[i] = true
	}
	// i <= limit/i is i*i <= limit without the overflow.
	for i := 2; i <= limit/i; i++ {
		if !isPrime[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			isPrime[j] = false
		}
	}
	return isPrime
}

// CollectPrimes lists the indices still marked in isPrime, ascending.
func CollectPrimes(isPrime []bool) []int {
	var primes []int
	for i, p := range isPrime {
		if p {
			primes = append(primes, i)
		}
	}
	return primes
}

// IsPrime reports whether v is prime by trial division over [2, sqrt v].
func IsPrime(v int) bool {
	if v < 2 {
		return false
	}
	if v < 4 {
		return true
	}
	if v%2 == 0 {
		return false
	}
	for d := 3; d <= v/d; d += 2 {
		if v%d == 0 {
			return false
		}
	}
	return true
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// GoldenData represents a single test case in the golden file
type GoldenData struct {
	N     int `json:"n"`
	Prime int `json:"prime"`
}

// oracleLimit covers every target below; pi(2,000,000) = 148933.
const oracleLimit = 2_000_000

func main() {
	outputDir := flag.String("out", "internal/prime/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "nth_prime_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Cases cover the fast path, the first estimated indices, pi(10^k)
	// boundaries and the largest index below two million.
	targets := []int{
		1, 2, 3, 4, 5, 6, 7, 8, 10, 25, 50, 100,
		168, 500, 1000, 1229, 2000, 5000, 9592, 10000,
		50000, 78498, 100000, 148933,
	}

	fmt.Println("Generating golden data...")
	primes := oraclePrimes(oracleLimit)

	var data []GoldenData
	for _, n := range targets {
		if n > len(primes) {
			fmt.Fprintf(os.Stderr, "Target %d exceeds oracle range (%d primes)\n", n, len(primes))
			os.Exit(1)
		}
		data = append(data, GoldenData{N: n, Prime: primes[n-1]})
		fmt.Printf("Generated p(%d)\n", n)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

// oraclePrimes lists all primes <= limit with a plain sieve that shares no
// code with internal/prime, so it can serve as an independent oracle.
func oraclePrimes(limit int) []int {
	composite := make([]bool, limit+1)
	var primes []int
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return primes
}

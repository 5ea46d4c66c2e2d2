package prime

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by errors.Is for any n < 1.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLimitOverflow is returned when an undershoot would push the sieve
	// past MaxLimit.
	ErrLimitOverflow = errors.New("sieve limit exceeds maximum")
)

// InvalidArgumentError reports an index that does not name a prime.
type InvalidArgumentError struct {
	// N is the rejected index.
	N int
}

// Error returns a human-readable description of the rejected index.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("n must be >= 1, got %d", e.N)
}

// Is makes errors.Is(err, ErrInvalidArgument) succeed.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

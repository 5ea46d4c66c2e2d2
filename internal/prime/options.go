package prime

// Options tunes the sieve bounds. The zero value uses the package defaults.
type Options struct {
	// MinLimit is the floor applied to the first sieve bound.
	MinLimit int
	// FallbackLimit is used when the analytic estimate is unavailable.
	FallbackLimit int
}

// normalize replaces unset or out-of-range fields with their defaults.
func (o Options) normalize() Options {
	if o.MinLimit <= 0 || o.MinLimit > MaxLimit {
		o.MinLimit = MinLimit
	}
	if o.FallbackLimit <= 0 || o.FallbackLimit > MaxLimit {
		o.FallbackLimit = FallbackLimit
	}
	return o
}

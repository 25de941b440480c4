// Package rng provides the random source the composition engine and editor
// draw from. Everything that needs randomness takes a Source so runs can be
// replayed from a seed.
package rng

// Source is the subset of *math/rand.Rand the generator needs.
type Source interface {
	// Intn returns a value in [0, n). Implementations return 0 for n <= 0.
	Intn(n int) int
	// Shuffle permutes n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// XorShift is a deterministic pseudo-random generator (xorshift64).
type XorShift struct {
	state uint64
}

// New creates a generator with the given seed. A zero seed selects the
// default seed so the generator never gets stuck at zero.
func New(seed uint64) *XorShift {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &XorShift{state: seed}
}

// Next returns the next random uint64.
func (r *XorShift) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a random int in [0, n).
func (r *XorShift) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Shuffle performs a Fisher-Yates shuffle of n elements.
func (r *XorShift) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Intn(i+1))
	}
}

// Pick returns a random element of items. The zero value is returned for an
// empty slice.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.Intn(len(items))]
}

// Shuffled returns a shuffled copy of items, leaving the input untouched.
func Shuffled[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	src.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Between returns a random int in [lo, hi].
func Between(src Source, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

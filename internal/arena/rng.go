package arena

// defaultSeed replaces a zero state, which xorshift cannot leave.
const defaultSeed = 88172645463325252

// RNG is a deterministic pseudo-random number generator (xorshift64).
// Every consumer builds its own instance from a documented seed so that
// identical seeds always replay identical sequences.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
// The seed is scrambled first so that consecutive seeds (time slices) do not
// produce correlated first draws.
func NewRNG(seed uint64) *RNG {
	state := splitmix(seed)
	if state == 0 {
		state = defaultSeed
	}
	return &RNG{state: state}
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Range returns a random float64 in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float()
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.Float() < p
}

func splitmix(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

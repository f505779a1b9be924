package sim

// Source is the raw random stream behind the RNG service.
// Intn must return a value in [0, n) for n > 0.
type Source interface {
	Intn(n int) int
}

// LCG is a deterministic 64-bit linear congruential generator.
// The same seed always yields the same session.
type LCG struct {
	state uint64
}

// NewLCG creates a generator with the given seed.
func NewLCG(seed int64) *LCG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &LCG{state: s}
}

// Next advances the generator and returns its new state.
func (l *LCG) Next() uint64 {
	l.state = l.state*6364136223846793005 + 1442695040888963407
	return l.state
}

// Intn returns a value in [0, n). The low bits of an LCG cycle quickly, so
// only the high 32 bits are used.
func (l *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((l.Next() >> 32) % uint64(n)) //#nosec G115 -- n is always positive
}

// SequenceSource replays a fixed list of values, cycling when exhausted.
// Each value is reduced modulo n. It lets tests force spawn positions and
// drop rolls.
type SequenceSource struct {
	Values []int
	pos    int
}

// NewSequenceSource creates a source that replays values in order.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{Values: values}
}

// Intn returns the next scripted value reduced into [0, n).
func (s *SequenceSource) Intn(n int) int {
	if n <= 0 || len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// RNG is the random service every spawn and drop roll goes through.
type RNG struct {
	src Source
}

// NewRNG wraps a source. A nil source falls back to NewLCG(1).
func NewRNG(src Source) *RNG {
	if src == nil {
		src = NewLCG(1)
	}
	return &RNG{src: src}
}

// Intn returns a value in [0, n), or 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.Intn(n)
}

// Range returns a value in [lo, hi], both inclusive. An inverted range
// collapses to lo.
func (r *RNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Chance reports true with the given percent probability.
func (r *RNG) Chance(percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return r.Intn(100) < percent
}

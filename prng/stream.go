package prng

import "math/bits"

// goldenGamma is the SplitMix64 state increment (Vigna 2014). The same
// constant seeds independent substreams without visible correlation.
const goldenGamma uint64 = 0x9e3779b97f4a7c15

// Stream is a deterministic xoshiro256** generator. The zero value is not
// usable; construct with New.
type Stream struct {
	state [4]uint64
}

// New returns a Stream whose state is derived from seed via SplitMix64.
// Two Streams built from the same seed produce identical sequences.
// Complexity: O(1).
func New(seed uint64) *Stream {
	s := &Stream{}
	s.Reseed(seed)
	return s
}

// Reseed resets the stream to the exact starting state New(seed) would
// produce, discarding any previously consumed output.
// Complexity: O(1).
func (s *Stream) Reseed(seed uint64) {
	// Expand the 64-bit seed into 256 bits of state with SplitMix64.
	// The xoshiro state must not be everywhere zero; SplitMix64 output
	// over four consecutive increments cannot be all-zero.
	x := seed
	for i := range s.state {
		x += goldenGamma
		s.state[i] = mix64(x)
	}
}

// mix64 is the SplitMix64 finalizer: a full-avalanche bit mixer.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Uint64 advances the stream and returns the next 64-bit value.
// Complexity: O(1).
func (s *Stream) Uint64() uint64 {
	out := bits.RotateLeft64(s.state[1]*5, 7) * 9

	t := s.state[1] << 17
	s.state[2] ^= s.state[0]
	s.state[3] ^= s.state[1]
	s.state[1] ^= s.state[2]
	s.state[0] ^= s.state[3]
	s.state[2] ^= t
	s.state[3] = bits.RotateLeft64(s.state[3], 45)

	return out
}

// Uint64n returns a uniform value in [0, n). It uses modulo rejection:
// draws whose residue class is over-represented in the 64-bit space are
// discarded, so the result is exactly uniform, not approximately so.
// Panics if n == 0 (programmer error, same policy as invalid options).
// Complexity: O(1) expected; at most one extra draw on average.
func (s *Stream) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("prng: Uint64n(0)")
	}
	// threshold is the smallest value above which v % n is unbiased:
	// 2^64 mod n, computed without overflow as -n mod n.
	threshold := -n % n
	for {
		v := s.Uint64()
		if v >= threshold {
			return v % n
		}
	}
}

// Int64Between returns a uniform value in the closed interval [lo, hi].
// Requires lo <= hi and hi-lo < 2^63-1; both hold for every seed range
// seedtree accepts.
// Complexity: O(1) expected.
func (s *Stream) Int64Between(lo, hi int64) int64 {
	if lo == hi {
		return lo
	}
	span := uint64(hi-lo) + 1
	return lo + int64(s.Uint64n(span))
}

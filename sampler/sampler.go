package sampler

import (
	"fmt"

	"github.com/seedtree/seedtree/prng"
)

// clusterRadiusDivisor scales the cluster radius relative to the range:
// radius = width / (clusters * clusterRadiusDivisor).
const clusterRadiusDivisor = 10

// Sampler draws child seeds from a master seed. The master fully
// determines every output; the internal stream is reset from it at the
// start of each sampling call (see the package documentation).
type Sampler struct {
	master int64
	stream *prng.Stream
}

// New returns a Sampler rooted at master.
// Complexity: O(1).
func New(master int64) *Sampler {
	return &Sampler{
		master: master,
		stream: prng.New(uint64(master)),
	}
}

// Master returns the seed this Sampler was rooted at.
func (s *Sampler) Master() int64 { return s.master }

// reset rewinds the stream to the canonical starting state for the
// master. Every public sampling method calls this first, which is what
// makes each call self-contained and reproducible.
func (s *Sampler) reset() { s.stream.Reseed(uint64(s.master)) }

// validate applies the eager checks shared by all strategies.
func validate(n int, r Range) error {
	if n <= 0 {
		return fmt.Errorf("%w: n=%d", ErrNonPositiveCount, n)
	}
	if !r.valid() {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Lo, r.Hi)
	}
	return nil
}

// Sample dispatches to the strategy selected by m, applying any
// method-specific options. Unknown methods yield ErrUnknownMethod.
// Complexity: O(n) for every strategy.
func (s *Sampler) Sample(m Method, n int, r Range, opts ...Option) ([]int64, error) {
	cfg := newSamplerConfig(opts...)
	switch m {
	case Simple:
		return s.Simple(n, r)
	case Stratified:
		return s.Stratified(n, r, cfg.strata)
	case Cluster:
		return s.Cluster(n, r, cfg.clusters, cfg.perCluster)
	case Systematic:
		return s.Systematic(n, r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, m)
	}
}

// Simple draws n independent uniform seeds in [r.Lo, r.Hi]. Unbiased,
// with no structural constraint on the output.
// Complexity: O(n).
func (s *Sampler) Simple(n int, r Range) ([]int64, error) {
	if err := validate(n, r); err != nil {
		return nil, err
	}
	s.reset()

	out := make([]int64, n)
	for i := range out {
		out[i] = s.stream.Int64Between(r.Lo, r.Hi)
	}
	return out, nil
}

// Stratified partitions [r.Lo, r.Hi] into nStrata equal-width contiguous
// strata (the last one absorbs the remainder of the integer division) and
// spreads the n draws across them as evenly as possible: n/nStrata per
// stratum, with the first n%nStrata strata receiving one extra. Each draw
// is uniform within its stratum, so the output covers the whole range
// regardless of draw order.
// Complexity: O(n + nStrata).
func (s *Sampler) Stratified(n int, r Range, nStrata int) ([]int64, error) {
	if err := validate(n, r); err != nil {
		return nil, err
	}
	if nStrata <= 0 {
		return nil, fmt.Errorf("%w: n_strata=%d", ErrNonPositiveCount, nStrata)
	}
	size := r.width() / int64(nStrata)
	if size < 1 {
		return nil, fmt.Errorf("%w: %d strata over [%d, %d]", ErrRangeTooNarrow, nStrata, r.Lo, r.Hi)
	}
	s.reset()

	base := n / nStrata
	extra := n % nStrata

	out := make([]int64, 0, n)
	for i := 0; i < nStrata; i++ {
		lo := r.Lo + int64(i)*size
		hi := lo + size - 1
		if i == nStrata-1 {
			hi = r.Hi // last stratum absorbs the division remainder
		}

		quota := base
		if i < extra {
			quota++
		}
		for j := 0; j < quota; j++ {
			out = append(out, s.stream.Int64Between(lo, hi))
		}
	}
	return out, nil
}

// Cluster draws nClusters uniform centers, then packs perCluster draws
// around each center within a fixed radius of width/(nClusters*10),
// clamped into the range. Sampling stops as soon as n seeds have been
// collected; if the clusters cannot supply n seeds, the shorter output is
// returned as-is. perCluster <= 0 selects max(1, n/nClusters).
// Complexity: O(n).
func (s *Sampler) Cluster(n int, r Range, nClusters, perCluster int) ([]int64, error) {
	if err := validate(n, r); err != nil {
		return nil, err
	}
	if nClusters <= 0 {
		return nil, fmt.Errorf("%w: n_clusters=%d", ErrNonPositiveCount, nClusters)
	}
	if perCluster <= 0 {
		perCluster = n / nClusters
		if perCluster < 1 {
			perCluster = 1
		}
	}
	s.reset()

	radius := r.width() / int64(nClusters*clusterRadiusDivisor)

	out := make([]int64, 0, n)
	for c := 0; c < nClusters; c++ {
		center := s.stream.Int64Between(r.Lo+radius, r.Hi-radius)
		for j := 0; j < perCluster; j++ {
			v := center + s.stream.Int64Between(-radius, radius)
			if v < r.Lo {
				v = r.Lo
			}
			if v > r.Hi {
				v = r.Hi
			}
			out = append(out, v)
			if len(out) == n {
				return out, nil
			}
		}
	}
	return out, nil
}

// Systematic emits n evenly spaced seeds: one random start in the first
// interval, then start + i*interval for i in 0..n-1, where interval is
// width/n. A value that would exceed r.Hi wraps back to r.Lo plus the
// excess, producing at most one discontinuity in the spacing.
// Complexity: O(n).
func (s *Sampler) Systematic(n int, r Range) ([]int64, error) {
	if err := validate(n, r); err != nil {
		return nil, err
	}
	interval := r.width() / int64(n)
	if interval < 1 {
		return nil, fmt.Errorf("%w: %d samples over [%d, %d]", ErrRangeTooNarrow, n, r.Lo, r.Hi)
	}
	s.reset()

	startHi := r.Lo + interval
	if startHi > r.Hi {
		startHi = r.Hi
	}
	start := s.stream.Int64Between(r.Lo, startHi)

	out := make([]int64, n)
	for i := range out {
		v := start + int64(i)*interval
		if v > r.Hi {
			v = r.Lo + (v - r.Hi)
		}
		out[i] = v
	}
	return out, nil
}

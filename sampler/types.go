package sampler

import "fmt"

// Range is a closed integer interval [Lo, Hi]. All sampled seeds fall
// inside it. A Range is valid only when Lo < Hi.
type Range struct {
	Lo int64
	Hi int64
}

// DefaultRange spans [0, 2^31-1], the conventional non-negative 32-bit
// seed space accepted by most numerical frameworks.
var DefaultRange = Range{Lo: 0, Hi: 1<<31 - 1}

// width returns Hi - Lo (the number of representable values minus one).
func (r Range) width() int64 { return r.Hi - r.Lo }

// valid reports whether Lo < Hi.
func (r Range) valid() bool { return r.Lo < r.Hi }

// Method selects one of the four sampling strategies.
type Method uint8

const (
	// Simple draws independent uniform values over the whole range.
	Simple Method = iota

	// Stratified spreads draws evenly across equal-width sub-ranges.
	Stratified

	// Cluster packs draws tightly around random cluster centers.
	Cluster

	// Systematic emits evenly spaced values with one random phase offset.
	Systematic
)

// methodNames maps Method values to their canonical configuration tokens.
var methodNames = [...]string{
	Simple:     "simple",
	Stratified: "stratified",
	Cluster:    "cluster",
	Systematic: "systematic",
}

// String returns the canonical token for m, or "unknown" for values
// outside the enum.
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return "unknown"
}

// Valid reports whether m is one of the four defined strategies.
func (m Method) Valid() bool { return int(m) < len(methodNames) }

// ParseMethod resolves a configuration token to its Method.
// Unknown tokens yield ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if s == name {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

package hierarchy

import "errors"

var (
	// ErrBadSeedCount indicates NSeeds or NSubSeeds <= 0.
	ErrBadSeedCount = errors.New("hierarchy: seed counts must be positive")

	// ErrBadDepth indicates MaxDepth <= 0.
	ErrBadDepth = errors.New("hierarchy: max depth must be positive")

	// ErrLevelOutOfRange indicates a level outside [0, Depth].
	ErrLevelOutOfRange = errors.New("hierarchy: level out of range")
)

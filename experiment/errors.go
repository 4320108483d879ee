package experiment

import "errors"

var (
	// ErrEmptyName indicates an empty experiment name.
	ErrEmptyName = errors.New("experiment: name must not be empty")

	// ErrNilTree indicates a Registry was constructed without a hierarchy.
	ErrNilTree = errors.New("experiment: hierarchy tree is required")

	// ErrUnknownSeed indicates a result for a seed the hierarchy never
	// produced, reported only under WithStrictLineage.
	ErrUnknownSeed = errors.New("experiment: seed not found in hierarchy")

	// ErrUnknownGroupBy indicates a grouping key outside the enum.
	ErrUnknownGroupBy = errors.New("experiment: unknown group-by key")

	// ErrUnsupportedFormat indicates an export format outside
	// {csv, json, yaml}.
	ErrUnsupportedFormat = errors.New("experiment: unsupported export format")
)

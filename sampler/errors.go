package sampler

import "errors"

var (
	// ErrNonPositiveCount indicates a sample or partition count <= 0.
	ErrNonPositiveCount = errors.New("sampler: count must be positive")

	// ErrInvalidRange indicates a range whose lower bound is not strictly
	// below its upper bound.
	ErrInvalidRange = errors.New("sampler: range lower bound must be below upper bound")

	// ErrUnknownMethod indicates a sampling method name outside
	// {simple, stratified, cluster, systematic}.
	ErrUnknownMethod = errors.New("sampler: unknown sampling method")

	// ErrRangeTooNarrow indicates the range cannot host the requested
	// partitioning (e.g. more strata than distinct values).
	ErrRangeTooNarrow = errors.New("sampler: range too narrow for requested parameters")
)

package experiment

import (
	"fmt"
	"time"

	"github.com/seedtree/seedtree/sampler"
)

// Result is one recorded experiment run. Results are immutable once
// stored: AddResult copies the metric and metadata maps on the way in.
type Result struct {
	// ExperimentID identifies the run: "<name>_<task>_seed<seed>".
	ExperimentID string

	// Lineage is the root-to-leaf path of seed values; Lineage[0] is
	// always the master seed and the last element is the seed used.
	Lineage []int64

	// Level is the seed's depth in the hierarchy: len(Lineage) - 1.
	Level int

	// Method is the sampling strategy that produced the seed.
	Method sampler.Method

	// Task is an optional free-form label (e.g. "classification").
	Task string

	// Metrics maps metric names to observed values.
	Metrics map[string]float64

	// Metadata carries arbitrary extra fields for export.
	Metadata map[string]any

	// Timestamp records when the result was added.
	Timestamp time.Time
}

// Seed returns the seed the experiment actually ran with: the last
// element of the lineage.
func (r Result) Seed() int64 {
	return r.Lineage[len(r.Lineage)-1]
}

// GroupBy selects the grouping key for Aggregate.
type GroupBy uint8

const (
	// GroupByMethod groups results by sampling method name.
	GroupByMethod GroupBy = iota

	// GroupByTask groups results by task label.
	GroupByTask

	// GroupByLevel groups results by hierarchy level.
	GroupByLevel
)

// String returns the canonical token for g.
func (g GroupBy) String() string {
	switch g {
	case GroupByMethod:
		return "sampling_method"
	case GroupByTask:
		return "task"
	case GroupByLevel:
		return "level"
	default:
		return "unknown"
	}
}

// Summary holds the aggregate statistics of one metric within one group.
// Std is the sample standard deviation (n-1 denominator), zero when
// fewer than two values contribute.
type Summary struct {
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
	Count int
}

// Format selects the Export serialization.
type Format uint8

const (
	// CSV writes a header row followed by one delimited row per result.
	CSV Format = iota

	// JSON writes an indented array of row objects.
	JSON

	// YAML writes a sequence of row mappings.
	YAML
)

// formatNames maps Format values to their configuration tokens.
var formatNames = [...]string{
	CSV:  "csv",
	JSON: "json",
	YAML: "yaml",
}

// String returns the canonical token for f, or "unknown".
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat resolves a configuration token to its Format.
// Unknown tokens yield ErrUnsupportedFormat.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if s == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

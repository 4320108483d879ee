package experiment

import (
	"fmt"
	"math"
	"strconv"
)

// Aggregate groups the stored results by g and computes per-metric
// statistics within each group. Results that lack a metric contribute
// nothing to that metric's summary.
// Complexity: O(results x metrics).
func (r *Registry) Aggregate(g GroupBy) (map[string]map[string]Summary, error) {
	keyOf, err := groupKeyFn(g)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]map[string][]float64)
	for _, res := range r.Results() {
		key := keyOf(res)
		metrics, ok := groups[key]
		if !ok {
			metrics = make(map[string][]float64)
			groups[key] = metrics
		}
		for name, v := range res.Metrics {
			metrics[name] = append(metrics[name], v)
		}
	}

	out := make(map[string]map[string]Summary, len(groups))
	for key, metrics := range groups {
		sums := make(map[string]Summary, len(metrics))
		for name, vals := range metrics {
			sums[name] = summarize(vals)
		}
		out[key] = sums
	}
	return out, nil
}

// Summaries computes per-metric statistics over the whole collection.
func (r *Registry) Summaries() map[string]Summary {
	byMetric := make(map[string][]float64)
	for _, res := range r.Results() {
		for name, v := range res.Metrics {
			byMetric[name] = append(byMetric[name], v)
		}
	}

	out := make(map[string]Summary, len(byMetric))
	for name, vals := range byMetric {
		out[name] = summarize(vals)
	}
	return out
}

// groupKeyFn maps a GroupBy to its key extractor.
func groupKeyFn(g GroupBy) (func(Result) string, error) {
	switch g {
	case GroupByMethod:
		return func(r Result) string { return r.Method.String() }, nil
	case GroupByTask:
		return func(r Result) string { return r.Task }, nil
	case GroupByLevel:
		return func(r Result) string { return strconv.Itoa(r.Level) }, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownGroupBy, g)
	}
}

// summarize computes mean, sample standard deviation (n-1 denominator,
// zero when n < 2), min and max of vals. vals is never empty here.
func summarize(vals []float64) Summary {
	s := Summary{
		Min:   vals[0],
		Max:   vals[0],
		Count: len(vals),
	}

	var sum float64
	for _, v := range vals {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(vals))

	if len(vals) > 1 {
		var sq float64
		for _, v := range vals {
			d := v - s.Mean
			sq += d * d
		}
		s.Std = math.Sqrt(sq / float64(len(vals)-1))
	}
	return s
}

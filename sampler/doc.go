// Package sampler generates child seeds from a master seed with one of
// four deterministic sampling strategies.
//
// Strategies:
//
//   - Simple     — n independent uniform draws over the whole range.
//   - Stratified — the range is split into equal-width strata and the draws
//     are spread across them as evenly as possible, guaranteeing coverage.
//   - Cluster    — random cluster centers, with draws packed tightly around
//     each center inside a fixed radius.
//   - Systematic — evenly spaced values with a single random phase offset,
//     wrapping values that would overshoot the upper bound.
//
// Reseed-per-call contract: every sampling call first resets the internal
// stream from the master seed. Calls are therefore self-contained — the
// output of any method depends only on (master, method, parameters), never
// on what was sampled before. Two fresh Samplers with the same master
// produce bit-identical sequences.
//
// Validation is eager: a non-positive count, an inverted range, or an
// unknown method name is reported to the caller immediately via the
// package sentinels; nothing is retried or silently downgraded.
//
// A Sampler is not safe for concurrent use: each call mutates the private
// stream cursor. Create one Sampler per goroutine.
package sampler

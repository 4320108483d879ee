// Package prng provides the deterministic pseudo-random stream that backs
// every sampling operation in seedtree.
//
// The generator is xoshiro256** (Blackman & Vigna, 2018), with its 256-bit
// state filled from a single 64-bit seed through a SplitMix64 expansion, as
// the xoshiro authors recommend. Both algorithms are published, fixed, and
// trivially portable, so the exact output sequence for a given seed is
// reproducible across platforms, runs, and reimplementations in other
// languages.
//
// Guarantees:
//
//   - Determinism: New(s) and Reseed(s) place the stream in the exact same
//     starting state; identical seeds yield identical output sequences.
//   - Unbiased ranges: Uint64n and Int64Between use modulo rejection, so
//     every value in the requested range is exactly equally likely.
//   - No hidden sources: there is no time-based or global seeding anywhere.
//
// A Stream is not safe for concurrent use; each owner keeps its own.
package prng

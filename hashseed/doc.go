// Package hashseed derives reproducible integer seeds from string
// identifiers.
//
// Derive hashes the UTF-8 bytes of the identifier with MD5, interprets the
// 128-bit digest as one big unsigned integer, and reduces it modulo the
// requested domain size. The same identifier therefore maps to the same
// seed on every platform and every run, which is the foundation for all
// reproducibility in seedtree.
//
// MD5 is used strictly as a deterministic mixing function. Nothing here
// depends on collision resistance against an adversary, and no security
// property is claimed.
//
// Errors:
//
//	ErrEmptyInput - the identifier is the empty string.
//	ErrBadDomain  - the domain size is zero.
package hashseed

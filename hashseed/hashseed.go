package hashseed

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"math/big"
)

// DefaultDomain is the default reduction modulus: seeds land in [0, 2^32).
const DefaultDomain uint64 = 1 << 32

var (
	// ErrEmptyInput indicates the identifier string is empty.
	ErrEmptyInput = errors.New("hashseed: input string is empty")

	// ErrBadDomain indicates a zero domain size.
	ErrBadDomain = errors.New("hashseed: domain size must be positive")
)

// Derive maps an identifier to a seed in [0, domain) by reducing its MD5
// digest modulo domain. Identical input always yields identical output.
// Complexity: O(len(input)).
func Derive(input string, domain uint64) (uint64, error) {
	if input == "" {
		return 0, ErrEmptyInput
	}
	if domain == 0 {
		return 0, ErrBadDomain
	}

	sum := md5.Sum([]byte(input))

	// The digest is 128 bits wide; big.Int keeps the reduction exact
	// instead of truncating to the low 64 bits first.
	var v, m big.Int
	v.SetBytes(sum[:])
	m.SetUint64(domain)
	return v.Mod(&v, &m).Uint64(), nil
}

// DeriveDefault is Derive with DefaultDomain.
func DeriveDefault(input string) (uint64, error) {
	return Derive(input, DefaultDomain)
}

// Digest returns the hex MD5 digest of the identifier, for callers that
// want to record the full 128-bit hash alongside the reduced seed.
func Digest(input string) (string, error) {
	if input == "" {
		return "", ErrEmptyInput
	}
	sum := md5.Sum([]byte(input))
	return hex.EncodeToString(sum[:]), nil
}

// keccak.go - FIPS 202 SHA-3 and SHAKE
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package keccak implements the Keccak-f[1600] permutation, the sponge
// construction built on it, and the SHA-3 and SHAKE functions as specified
// in FIPS 202.
//
// Only the b = 1600 permutation width (64 bit lanes) is supported, as that
// is the only width used by the standardized SHA-3 and SHAKE parameter sets.
package keccak

import (
	"errors"
	"hash"
)

const (
	// Size224 is the size of a SHA3-224 digest in bytes.
	Size224 = 28

	// Size256 is the size of a SHA3-256 (and Keccak-256) digest in bytes.
	Size256 = 32

	// Size384 is the size of a SHA3-384 digest in bytes.
	Size384 = 48

	// Size512 is the size of a SHA3-512 (and Keccak-512) digest in bytes.
	Size512 = 64

	// StateSize is the size of the permutation state in bytes.
	StateSize = 200

	// The "domain separation" byte appended to the message before the
	// pad10*1 rule is applied.  It holds the variant's suffix bits and,
	// merged in, the first "1" bit of the padding: "01" for SHA-3 giving
	// 0x06, "1111" for SHAKE giving 0x1f, and the bare padding bit 0x01
	// for the pre-standardization Keccak functions.
	dsbyteSHA3   = 0x06
	dsbyteShake  = 0x1f
	dsbyteKeccak = 0x01
)

var (
	// ErrInvalidRate is the error thrown via a panic when a sponge is
	// constructed with a rate that is not a whole positive number of
	// lanes, or that leaves no capacity.
	ErrInvalidRate = errors.New("keccak: invalid sponge rate")

	// ErrInvalidStateSize is the error thrown via a panic when a buffer
	// of a length other than StateSize bytes is used as a permutation
	// state.
	ErrInvalidStateSize = errors.New("keccak: invalid state size")
)

// New224 returns a new SHA3-224 instance, implementing hash.Hash.
func New224() hash.Hash {
	return newSponge(144, Size224, dsbyteSHA3)
}

// New256 returns a new SHA3-256 instance, implementing hash.Hash.
func New256() hash.Hash {
	return newSponge(136, Size256, dsbyteSHA3)
}

// New384 returns a new SHA3-384 instance, implementing hash.Hash.
func New384() hash.Hash {
	return newSponge(104, Size384, dsbyteSHA3)
}

// New512 returns a new SHA3-512 instance, implementing hash.Hash.
func New512() hash.Hash {
	return newSponge(72, Size512, dsbyteSHA3)
}

// NewLegacyKeccak256 returns a new Keccak-256 instance, implementing
// hash.Hash.  Keccak-256 uses the original Keccak padding rather than the
// FIPS 202 domain suffix, and is only useful for compatibility with
// existing cryptosystems (eg: Ethereum).  All other users should use
// New256 instead.
func NewLegacyKeccak256() hash.Hash {
	return newSponge(136, Size256, dsbyteKeccak)
}

// NewLegacyKeccak512 returns a new Keccak-512 instance, implementing
// hash.Hash.  See NewLegacyKeccak256 regarding the padding.
func NewLegacyKeccak512() hash.Hash {
	return newSponge(72, Size512, dsbyteKeccak)
}

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) (digest [Size224]byte) {
	h := New224()
	_, _ = h.Write(data)
	h.Sum(digest[:0])
	return
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (digest [Size256]byte) {
	h := New256()
	_, _ = h.Write(data)
	h.Sum(digest[:0])
	return
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) (digest [Size384]byte) {
	h := New384()
	_, _ = h.Write(data)
	h.Sum(digest[:0])
	return
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (digest [Size512]byte) {
	h := New512()
	_, _ = h.Write(data)
	h.Sum(digest[:0])
	return
}

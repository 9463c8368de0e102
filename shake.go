// shake.go - SHAKE extendable-output functions
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package keccak

import "io"

// ShakeHash defines the interface to hash functions that support
// arbitrary-length output.
type ShakeHash interface {
	// Write absorbs more data into the hash's state.  It panics if input
	// is written after output has been read.
	io.Writer

	// Read reads more output from the hash.  It never returns an error.
	// Unlike Sum, reading affects the hash's state.
	io.Reader

	// Clone returns a copy of the ShakeHash in its current state.
	Clone() ShakeHash

	// Reset resets the ShakeHash to its initial state.
	Reset()
}

func (d *sponge) Clone() ShakeHash {
	return d.clone()
}

// NewShake128 returns a new SHAKE128 variable-output-length ShakeHash.
// Its generic security strength is 128 bits against all attacks if at
// least 32 bytes of its output are used.
func NewShake128() ShakeHash {
	return newSponge(168, 32, dsbyteShake)
}

// NewShake256 returns a new SHAKE256 variable-output-length ShakeHash.
// Its generic security strength is 256 bits against all attacks if at
// least 64 bytes of its output are used.
func NewShake256() ShakeHash {
	return newSponge(136, 64, dsbyteShake)
}

// ShakeSum128 writes an arbitrary-length SHAKE128 digest of data into
// hash.
func ShakeSum128(hash, data []byte) {
	h := NewShake128()
	_, _ = h.Write(data)
	_, _ = h.Read(hash)
}

// ShakeSum256 writes an arbitrary-length SHAKE256 digest of data into
// hash.
func ShakeSum256(hash, data []byte) {
	h := NewShake256()
	_, _ = h.Write(data)
	_, _ = h.Read(hash)
}

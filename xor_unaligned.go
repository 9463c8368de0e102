// xor_unaligned.go - Unaligned rate XOR
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

//go:build (amd64 || 386 || ppc64le) && !purego
// +build amd64 386 ppc64le
// +build !purego

package keccak

import "unsafe"

// On little-endian hosts that tolerate unaligned loads, the lane codec is
// a plain 64 bit XOR/store, no byte shuffling required.

func xorIn(d *sponge, buf []byte) {
	// The view must cover only the lanes that buf does: full rate blocks
	// are absorbed straight out of the caller's slice, which may have
	// nothing left in its allocation past the block.
	bw := unsafe.Slice((*uint64)(unsafe.Pointer(&buf[0])), len(buf)/laneSize)
	for i, v := range bw {
		d.a[i] ^= v
	}
}

func copyOut(d *sponge, b []byte) {
	ab := (*[maxRate]uint8)(unsafe.Pointer(&d.a[0]))
	copy(b, ab[:])
}

// xor_generic.go - Portable rate XOR
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

//go:build (!amd64 && !386 && !ppc64le) || purego
// +build !amd64,!386,!ppc64le purego

package keccak

import "encoding/binary"

// xorIn XORs the bytes of buf into the rate portion of the state.  buf is
// always a whole number of lanes.
func xorIn(d *sponge, buf []byte) {
	n := len(buf) / laneSize
	for i := 0; i < n; i++ {
		d.a[i] ^= binary.LittleEndian.Uint64(buf)
		buf = buf[laneSize:]
	}
}

// copyOut copies lanes from the rate portion of the state into b.
func copyOut(d *sponge, b []byte) {
	for i := 0; len(b) >= laneSize; i++ {
		binary.LittleEndian.PutUint64(b, d.a[i])
		b = b[laneSize:]
	}
}

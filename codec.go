// codec.go - State byte codec
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package keccak

import "encoding/binary"

const laneSize = 8 // bytes

// bytesToState loads a StateSize byte buffer into the lane representation,
// lane (x, y) from bytes [laneSize*(5*y+x), laneSize*(5*y+x)+laneSize),
// little-endian within each lane.
func bytesToState(a *[25]uint64, buf []byte) {
	if len(buf) != StateSize {
		panic(ErrInvalidStateSize)
	}
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(buf[i*laneSize:])
	}
}

// stateToBytes serializes the lane representation back into a StateSize
// byte buffer.  It is the exact inverse of bytesToState.
func stateToBytes(a *[25]uint64, buf []byte) {
	if len(buf) != StateSize {
		panic(ErrInvalidStateSize)
	}
	for i, v := range a {
		binary.LittleEndian.PutUint64(buf[i*laneSize:], v)
	}
}

// keccakf.go - Keccak-f[1600] permutation
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package keccak

import "math/bits"

const numRounds = 24 // 12 + 2*log2(w), w = 64

// rc is the round constant table, one constant per round, XORed into lane
// (0, 0) by the iota step.  The values are the output of the FIPS 202
// Appendix A LFSR, precomputed.
var rc = [numRounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a,
	0x8000000080008000, 0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008a,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotc and piln drive the combined rho and pi steps.  Walking the pi lane
// cycle starting from lane (1, 0), piln[i] is the index of the i-th lane
// visited and rotc[i] is its rho rotation offset (the triangular numbers
// (i+1)(i+2)/2 mod 64).  Lane (0, 0) is not part of the cycle and has
// offset 0.
var rotc = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piln = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// keccakF1600 applies the 24 round Keccak-f[1600] permutation to a, in
// place.  Lane (x, y) is held in a[5*y+x].
func keccakF1600(a *[25]uint64) {
	var bc [5]uint64

	for r := 0; r < numRounds; r++ {
		// theta
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			d := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= d
			}
		}

		// rho and pi, fused into one walk of the lane cycle.
		t := a[1]
		for i := 0; i < 24; i++ {
			j := piln[i]
			t, a[j] = a[j], bits.RotateLeft64(t, rotc[i])
		}

		// chi.  Each output row depends on the whole pre-chi row, so
		// the row is snapshotted into bc before any lane is written.
		for j := 0; j < 25; j += 5 {
			copy(bc[:], a[j:j+5])
			for i := 0; i < 5; i++ {
				a[j+i] = bc[i] ^ (^bc[(i+1)%5] & bc[(i+2)%5])
			}
		}

		// iota
		a[0] ^= rc[r]
	}
}

// F1600 applies the Keccak-f[1600] permutation to a StateSize byte state,
// in place.  The state is interpreted as 25 little-endian 64 bit lanes,
// with lane (x, y) occupying bytes [8*(5*y+x), 8*(5*y+x)+8), per the
// FIPS 202 byte ordering.
func F1600(state *[StateSize]byte) {
	var a [25]uint64
	bytesToState(&a, state[:])
	keccakF1600(&a)
	stateToBytes(&a, state[:])
}

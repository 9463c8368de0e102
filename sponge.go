// sponge.go - Sponge construction
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package keccak

// spongeDirection indicates the direction bytes are flowing through the
// sponge.
type spongeDirection int

const (
	// spongeAbsorbing indicates that the sponge is absorbing input.
	spongeAbsorbing spongeDirection = iota

	// spongeSqueezing indicates that the sponge is being squeezed.
	spongeSqueezing
)

// maxRate is the largest standardized rate in bytes (SHAKE128).  Every
// FIPS 202 parameter set keeps a capacity of at least 256 bits, so no
// standard rate exceeds this.
const maxRate = 1344 / 8

type sponge struct {
	a    [25]uint64 // main state of the hash
	buf  []byte     // points into storage
	rate int        // the number of bytes of state to use

	dsbyte  byte
	storage [maxRate]byte

	outputLen int             // the default output size in bytes
	direction spongeDirection // whether the sponge is absorbing or squeezing
}

// newSponge constructs a sponge over Keccak-f[1600] with the given rate in
// bytes, default output length, and domain separation byte.  Invalid rates
// are a bug in the variant configuration and thrown via a panic.
func newSponge(rate, outputLen int, dsbyte byte) *sponge {
	if rate <= 0 || rate > maxRate || rate%laneSize != 0 {
		panic(ErrInvalidRate)
	}
	return &sponge{rate: rate, outputLen: outputLen, dsbyte: dsbyte}
}

// BlockSize returns the rate of the sponge in bytes.
func (d *sponge) BlockSize() int { return d.rate }

// Size returns the output size of the hash function in bytes.
func (d *sponge) Size() int { return d.outputLen }

// Reset zeroes the sponge state and the byte buffer, and returns the
// sponge to the absorbing direction.
func (d *sponge) Reset() {
	for i := range d.a {
		d.a[i] = 0
	}
	d.direction = spongeAbsorbing
	d.buf = d.storage[:0]
}

func (d *sponge) clone() *sponge {
	ret := *d
	if ret.direction == spongeAbsorbing {
		// While absorbing, buf always starts at the base of storage.
		ret.buf = ret.storage[:len(ret.buf)]
	} else {
		// While squeezing, buf is the unread tail of the rate portion;
		// its offset into storage is recovered from the remaining
		// capacity.
		off := maxRate - cap(d.buf)
		ret.buf = ret.storage[off : off+len(d.buf)]
	}
	return &ret
}

// permute applies the Keccak-f[1600] permutation, handling the buffering
// on either side of it.
func (d *sponge) permute() {
	switch d.direction {
	case spongeAbsorbing:
		// A full rate block has been buffered, absorb it before
		// permuting.
		xorIn(d, d.buf)
		d.buf = d.storage[:0]
		keccakF1600(&d.a)
	case spongeSqueezing:
		// The rate portion has been fully emitted, permute before
		// copying out more output.
		keccakF1600(&d.a)
		d.buf = d.storage[:d.rate]
		copyOut(d, d.buf)
	}
}

// padAndPermute appends the domain separation byte, applies the pad10*1
// rule, and switches the sponge to the squeezing direction.
func (d *sponge) padAndPermute() {
	if d.buf == nil {
		d.buf = d.storage[:0]
	}

	// There is always at least one byte of space in d.buf; a full buffer
	// would already have been absorbed by permute.  dsbyte carries the
	// variant's suffix bits and the first "1" bit of the padding, so a
	// message that exactly fills the block spills into one extra block of
	// padding here.
	d.buf = append(d.buf, d.dsbyte)
	zerosStart := len(d.buf)
	d.buf = d.storage[:d.rate]
	for i := zerosStart; i < d.rate; i++ {
		d.buf[i] = 0
	}

	// The final "1" bit of pad10*1.  Bits are numbered from the LSB
	// upwards, so it lands in the MSB of the last rate byte.
	d.buf[d.rate-1] ^= 0x80

	d.permute()
	d.direction = spongeSqueezing
	d.buf = d.storage[:d.rate]
	copyOut(d, d.buf)
}

// Write absorbs more data into the sponge state.  It is a caller bug to
// write input after output has been read, and doing so will panic.
func (d *sponge) Write(p []byte) (written int, err error) {
	if d.direction != spongeAbsorbing {
		panic("keccak: write to sponge after read")
	}
	if d.buf == nil {
		d.buf = d.storage[:0]
	}
	written = len(p)

	for len(p) > 0 {
		if len(d.buf) == 0 && len(p) >= d.rate {
			// Fast path: absorb a full rate block of input directly,
			// skipping the buffer.
			xorIn(d, p[:d.rate])
			p = p[d.rate:]
			keccakF1600(&d.a)
		} else {
			// Slow path: buffer the input until a full block has
			// accumulated.
			todo := d.rate - len(d.buf)
			if todo > len(p) {
				todo = len(p)
			}
			d.buf = append(d.buf, p[:todo]...)
			p = p[todo:]

			if len(d.buf) == d.rate {
				d.permute()
			}
		}
	}

	return
}

// Read squeezes an arbitrary number of bytes from the sponge, padding and
// switching direction first if the sponge is still absorbing.  It never
// returns an error.
func (d *sponge) Read(out []byte) (n int, err error) {
	if d.direction == spongeAbsorbing {
		d.padAndPermute()
	}

	n = len(out)

	for len(out) > 0 {
		copied := copy(out, d.buf)
		d.buf = d.buf[copied:]
		out = out[copied:]

		// The rate portion has been squeezed dry, permute for more.
		if len(d.buf) == 0 {
			d.permute()
		}
	}

	return
}

// Sum appends the digest to in and returns the resulting slice.  The
// sponge is cloned first, so the caller can continue to write and sum.
func (d *sponge) Sum(in []byte) []byte {
	dup := d.clone()
	hash := make([]byte, dup.outputLen)
	_, _ = dup.Read(hash)
	return append(in, hash...)
}

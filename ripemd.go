// Package ripemd implements the RIPEMD-160 hash function, plus the narrower RIPEMD-128 which
// shares its padding, buffering and tables.
//
// A Digest is used once: bytes are written to it any number of times and Finalize returns the
// digest. Writing to or finalizing a digest that has already been finalized fails with
// ErrFinalized. A Digest must not be used from more than one goroutine at a time; separate
// digests share no state.
package ripemd

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	// Size is the length in bytes of a RIPEMD-160 digest.
	Size = 20
	// Size128 is the length in bytes of a RIPEMD-128 digest.
	Size128 = 16
	// BlockSize is the block size of both functions in bytes.
	BlockSize = 64
)

var iv = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

// ErrFinalized is returned when a Digest is written to or finalized after Finalize.
var ErrFinalized = errors.New("ripemd: digest already finalized")

type phase uint8

const (
	phaseEmpty phase = iota
	phaseAccumulating
	phaseFinalized
)

// Digest is the running state of one RIPEMD-160 or RIPEMD-128 computation. It implements
// hash.Hash.
type Digest struct {
	s     [5]uint32       /* chaining state; RIPEMD-128 uses s[:4] */
	x     [BlockSize]byte /* pending partial block */
	nx    int             /* bytes pending in x, always < BlockSize between calls */
	tc    uint64          /* total bytes written, modulo 2^64 */
	size  int
	phase phase
}

var _ hash.Hash = (*Digest)(nil)

// New returns an empty RIPEMD-160 digest.
func New() *Digest {
	d := &Digest{size: Size}
	d.Reset()
	return d
}

// New128 returns an empty RIPEMD-128 digest.
func New128() *Digest {
	d := &Digest{size: Size128}
	d.Reset()
	return d
}

// Sum160 returns the RIPEMD-160 digest of data.
func Sum160(data []byte) (sum [Size]byte) {
	d := New()
	_, _ = d.Write(data) /* Cannot fail on a fresh digest. */
	d.checkSum(sum[:])
	return sum
}

// Sum128 returns the RIPEMD-128 digest of data.
func Sum128(data []byte) (sum [Size128]byte) {
	d := New128()
	_, _ = d.Write(data) /* Cannot fail on a fresh digest. */
	d.checkSum(sum[:])
	return sum
}

func (d *Digest) Size() int { return d.size }

func (d *Digest) BlockSize() int { return BlockSize }

// Reset returns d to the state of a freshly created digest of the same size, including after
// Finalize.
func (d *Digest) Reset() {
	d.s = iv
	d.x = [BlockSize]byte{}
	d.nx, d.tc, d.phase = 0, 0, phaseEmpty
}

// Write absorbs p. It only fails, with ErrFinalized and without touching d, once d has been
// finalized.
func (d *Digest) Write(p []byte) (int, error) {
	if d.phase == phaseFinalized {
		return 0, fmt.Errorf("ripemd: Write: %w", ErrFinalized)
	}
	d.phase = phaseAccumulating
	nn := len(p)
	d.tc += uint64(nn)

	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		p = p[n:]
		if d.nx < BlockSize {
			return nn, nil
		}
		d.block(d.x[:])
		d.nx = 0
	}
	n := d.block(p)
	if p = p[n:]; len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return nn, nil
}

// Finalize pads the message, returns its digest and marks d as finalized. The only error is
// ErrFinalized, on a second call.
func (d *Digest) Finalize() ([]byte, error) {
	if d.phase == phaseFinalized {
		return nil, fmt.Errorf("ripemd: Finalize: %w", ErrFinalized)
	}
	sum := make([]byte, d.size)
	d.checkSum(sum)
	d.s, d.x, d.phase = [5]uint32{}, [BlockSize]byte{}, phaseFinalized
	return sum, nil
}

// Sum appends the digest of everything written so far to b without finalizing d. It panics if
// d has already been finalized.
func (d *Digest) Sum(b []byte) []byte {
	if d.phase == phaseFinalized {
		panic(fmt.Errorf("ripemd: Sum: %w", ErrFinalized))
	}
	dd := *d
	var sum [Size]byte
	dd.checkSum(sum[:d.size])
	return append(b, sum[:d.size]...)
}

// checkSum runs the padding blocks through d and serializes the chaining state into sum, which
// must be d.size bytes long.
func (d *Digest) checkSum(sum []byte) {
	tail, n := pad(d.tc, d.x[:d.nx])
	d.block(tail[:n])
	for i := 0; i < len(sum)/4; i++ {
		binary.LittleEndian.PutUint32(sum[i*4:], d.s[i])
	}
}

// block compresses every whole block at the start of p and returns how many bytes it consumed.
func (d *Digest) block(p []byte) int {
	n := 0
	for ; len(p) >= BlockSize; p = p[BlockSize:] {
		x := words(p)
		if d.size == Size128 {
			s := compress128([4]uint32{d.s[0], d.s[1], d.s[2], d.s[3]}, &x)
			d.s[0], d.s[1], d.s[2], d.s[3] = s[0], s[1], s[2], s[3]
		} else {
			d.s = compress160(d.s, &x)
		}
		n += BlockSize
	}
	return n
}

package ripemd

import "encoding/binary"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// pad returns the final one or two blocks of a message whose length is tc bytes and whose
// trailing partial block is tail. The message is extended by a single 0x80 byte and then zeroes
// until it sits 8 bytes short of a block boundary; those last 8 bytes carry the bit length of the
// unpadded message, least-significant byte first. When tail already holds 56 bytes or more, the
// marker and zero fill spill into a second block.
//
// The bit length is tc<<3 modulo 2^64, so messages of 2^61 bytes or more wrap. This matches the
// published algorithm and is not guarded against.
func pad(tc uint64, tail []byte) (out [2 * BlockSize]byte, n int) {
	n = BlockSize
	if len(tail) >= BlockSize-8 {
		n = 2 * BlockSize
	}
	copy(out[:], tail)
	out[len(tail)] = 0x80
	binary.LittleEndian.PutUint64(out[n-8:n], tc<<3)
	return out, n
}

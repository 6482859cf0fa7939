package ripemd

import (
	"encoding/binary"
	. "math/bits"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The compression function of RIPEMD-160 runs two 80-step lines over the same message block,
// each from its own copy of the chaining state, and only then mixes their results together.
// RIPEMD-128 (see block128.go) shares these tables, using only their first four stages.

/* Message word selected at each step. Row j of selL is ρ^j, row j of selR is ρ^j∘π. */
var selL = [80]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var selR = [80]uint8{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

/* Left-rotation amount at each step. */
var rotL = [80]uint8{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var rotR = [80]uint8{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

/* Stage constants: integer parts of 2^30 times the square roots (left) and cube roots (right)
of 0, 2, 3, 5 and 7. */
var kL = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
var kR = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}

// f is the nonlinear function of stage j. The left line walks j upward, the right line downward.
func f(j int, x, y, z uint32) uint32 {
	switch j {
	case 0:
		return x ^ y ^ z
	case 1:
		return x&y | ^x&z
	case 2:
		return (x | ^y) ^ z
	case 3:
		return x&z | y&^z
	default:
		return x ^ (y | ^z)
	}
}

// words decodes a 64-byte block into its sixteen little-endian message words.
func words(p []byte) (x [16]uint32) {
	_ = p[BlockSize-1]
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(p[i*4:])
	}
	return x
}

func leftLine(s [5]uint32, x *[16]uint32) [5]uint32 {
	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]
	for i := 0; i < 80; i++ {
		j := i >> 4
		t := RotateLeft32(a+f(j, b, c, d)+x[selL[i]]+kL[j], int(rotL[i])) + e
		a, b, c, d, e = e, t, b, RotateLeft32(c, 10), d
	}
	return [5]uint32{a, b, c, d, e}
}

func rightLine(s [5]uint32, x *[16]uint32) [5]uint32 {
	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]
	for i := 0; i < 80; i++ {
		j := i >> 4
		t := RotateLeft32(a+f(4-j, b, c, d)+x[selR[i]]+kR[j], int(rotR[i])) + e
		a, b, c, d, e = e, t, b, RotateLeft32(c, 10), d
	}
	return [5]uint32{a, b, c, d, e}
}

// merge160 folds both lines into the next chaining state. Every output word takes one word from
// each line plus one from the incoming state, rotated one position further for each source.
func merge160(s, l, r [5]uint32) [5]uint32 {
	return [5]uint32{
		s[1] + l[2] + r[3],
		s[2] + l[3] + r[4],
		s[3] + l[4] + r[0],
		s[4] + l[0] + r[1],
		s[0] + l[1] + r[2],
	}
}

func compress160(s [5]uint32, x *[16]uint32) [5]uint32 {
	return merge160(s, leftLine(s, x), rightLine(s, x))
}

package ripemd

import . "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var kL128 = [4]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc}
var kR128 = [4]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x00000000}

func leftLine128(s [4]uint32, x *[16]uint32) [4]uint32 {
	a, b, c, d := s[0], s[1], s[2], s[3]
	for i := 0; i < 64; i++ {
		j := i >> 4
		t := RotateLeft32(a+f(j, b, c, d)+x[selL[i]]+kL128[j], int(rotL[i]))
		a, b, c, d = d, t, b, c
	}
	return [4]uint32{a, b, c, d}
}

func rightLine128(s [4]uint32, x *[16]uint32) [4]uint32 {
	a, b, c, d := s[0], s[1], s[2], s[3]
	for i := 0; i < 64; i++ {
		j := i >> 4
		t := RotateLeft32(a+f(3-j, b, c, d)+x[selR[i]]+kR128[j], int(rotR[i]))
		a, b, c, d = d, t, b, c
	}
	return [4]uint32{a, b, c, d}
}

func merge128(s, l, r [4]uint32) [4]uint32 {
	return [4]uint32{
		s[1] + l[2] + r[3],
		s[2] + l[3] + r[0],
		s[3] + l[0] + r[1],
		s[0] + l[1] + r[2],
	}
}

func compress128(s [4]uint32, x *[16]uint32) [4]uint32 {
	return merge128(s, leftLine128(s, x), rightLine128(s, x))
}

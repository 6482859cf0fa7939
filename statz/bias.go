package main

import (
	"encoding/binary"
	. "math/bits"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// meanBias returns the mean distance of each output bit's frequency of ones from one half, as a
// percentage of one half. An ideal hash approaches 0 as len(sums) grows.
func meanBias(sums [][]byte) float64 {
	if len(sums) == 0 {
		return 0
	}
	tally := make([]int, len(sums[0])*8)
	for _, sum := range sums {
		for i, b := range sum {
			for b != 0 {
				tally[i*8+TrailingZeros8(b)]++
				b &= b - 1
			}
		}
	}
	half, total := float64(len(sums))/2, 0.0
	for _, ones := range tally {
		if d := float64(ones) - half; d < 0 {
			total -= d
		} else {
			total += d
		}
	}
	return total / float64(len(tally)) / half * 100
}

// integerInputs returns the big-endian encodings of 0 through n-1.
func integerInputs(n uint32) [][]byte {
	msgs := make([][]byte, n)
	for i := range msgs {
		msgs[i] = make([]byte, 4)
		binary.BigEndian.PutUint32(msgs[i], uint32(i))
	}
	return msgs
}

package main

import (
	. "fmt"
	"hash"
	"runtime"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/ripemd"
	"github.com/p7r0x7/ripemd/internal/keystream"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"

	//lint:ignore SA1019 used only as a point of comparison.
	"golang.org/x/crypto/ripemd160"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This program is the hardly-rigorous statistics suite for this RIPEMD implementation: it reports
// the mean per-bit bias of digests over structured and pseudo-random inputs, then benchmarks
// throughput and memory usage against other, widely-used hash functions.

const ints = 50_000

func monobit() {
	integers, random := make([][]byte, ints), make([][]byte, ints)
	for i, msg := range integerInputs(ints) {
		sum := ripemd.Sum160(msg)
		integers[i] = sum[:]
		sum = ripemd.Sum160(keystream.Bytes(uint64(i), 1024))
		random[i] = sum[:]
	}
	Printf("Integer input Monobit test:  %5.3f%%\n", meanBias(integers))
	Printf("Random input Monobit test:   %5.3f%%\n\n", meanBias(random))
}

func main() {
	Printf("Running Statz on %s (%d logical CPUs)\n%s/%s\n\n",
		cpuid.CPU.BrandName, cpuid.CPU.LogicalCores, runtime.GOOS, runtime.GOARCH)
	t := time.Now()

	monobit()
	benchAlg("github.com/p7r0x7/ripemd 160", func() hash.Hash { return ripemd.New() })
	benchAlg("github.com/p7r0x7/ripemd 128", func() hash.Hash { return ripemd.New128() })
	benchAlg("golang.org/x/crypto/ripemd160", ripemd160.New)
	benchAlg("github.com/minio/sha256-simd", sha256.New)
	benchAlg("github.com/zeebo/blake3", func() hash.Hash { return blake3.New() })
	benchAlg("github.com/zeebo/xxh3", func() hash.Hash { return xxh3.New() })

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}

package main

import (
	. "fmt"
	"hash"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/markkurossi/tabulate"
	"github.com/p7r0x7/ripemd/internal/keystream"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var sizes = [...]struct {
	label string
	n     int
}{{"64B", 64}, {"512K", 512 << 10}, {"64M", 64 << 20}}

// hashBench returns a benchmark that repeatedly hashes msg with a reused h.
func hashBench(h hash.Hash, msg []byte) func(b *testing.B) {
	return func(b *testing.B) {
		sum := make([]byte, 0, 64)
		b.SetBytes(int64(len(msg)))
		b.ReportAllocs()
		b.ResetTimer()
		for i := b.N; i > 0; i-- {
			h.Reset()
			h.Write(msg)
			sum = h.Sum(sum[:0])
		}
	}
}

// sampleHz polls the time-stamp counter until stop is closed and returns the mean clock rate it
// observed, or 0 without a counter.
func sampleHz(stop <-chan struct{}, done func(hz float64)) {
	if calltime == 0 {
		done(0)
		return
	}
	var total, polls uint64
	for {
		select {
		case <-stop:
			if polls == 0 {
				done(0)
			} else {
				done(float64(total*1000) / float64(polls))
			}
			return
		default:
		}
		tsc1 := tscStart()
		time.Sleep(time.Millisecond)
		tsc2 := tscEnd()
		total += tsc2 - tsc1 - calltime
		polls++
		time.Sleep(9 * time.Millisecond)
	}
}

// benchAlg measures throughput, cycles per byte and allocations of one algorithm at every size and
// prints them as a table.
func benchAlg(name string, newHash func() hash.Hash) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header(name).SetAlign(tabulate.ML)
	for _, s := range sizes {
		tab.Header(s.label).SetAlign(tabulate.MR)
	}
	speed, cpb, usage := tab.Row(), tab.Row(), tab.Row()
	speed.Column("MB/s")
	cpb.Column("cpb")
	usage.Column("B/op")

	for _, s := range sizes {
		msg := keystream.Bytes(uint64(s.n), s.n)
		stop, wg, hz := make(chan struct{}), sync.WaitGroup{}, 0.0
		wg.Add(1)
		go sampleHz(stop, func(v float64) { hz = v; wg.Done() })

		r := testing.Benchmark(hashBench(newHash(), msg))
		close(stop)
		wg.Wait()

		throughput := float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
		speed.Column(Sprintf("%.2f", throughput/1e6))
		if hz > 0 {
			cpb.Column(Sprintf("%.2f", hz/throughput))
		} else {
			cpb.Column("-")
		}
		usage.Column(Sprintf("%d", r.AllocedBytesPerOp()))
	}
	tab.Print(os.Stdout)
}

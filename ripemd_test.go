package ripemd

import (
	"encoding/hex"
	"io"
	"strings"
	"testing"

	"github.com/p7r0x7/ripemd/internal/keystream"
	"github.com/stretchr/testify/require"

	//lint:ignore SA1019 reference implementation for comparison.
	"golang.org/x/crypto/ripemd160"
)

type vector struct{ in, out string }

var vectors160 = []vector{
	{"", "9c1185a5c5e9fc54612808977ee8f548b2258d31"},
	{"a", "0bdc9d2d256b3ee9daae347be6f4dc835a467ffe"},
	{"abc", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
	{"message digest", "5d0689ef49d2fae572b881b123a85ffa21595f36"},
	{"abcdefghijklmnopqrstuvwxyz", "f71c27109c692c1b56bbdceb5b9d2865b3708dbc"},
	{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "12a053384a9c0c88e405a06c27dcf49ada62eb2b"},
	{"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", "b0e20b6e3116640286ed3a87a5713079b21f5189"},
	{strings.Repeat("1234567890", 8), "9b752e45573d4b39f4dbd3323cab82bf63326bfb"},
}

var vectors128 = []vector{
	{"", "cdf26213a150dc3ecb610f18f6b38b46"},
	{"a", "86be7afa339d0fc7cfc785e72f578d33"},
	{"abc", "c14a12199c66e4ba84636b0f69144c77"},
	{"message digest", "9e327b3d6e523062afc1132d7df9d1b8"},
	{"abcdefghijklmnopqrstuvwxyz", "fd2aa607f71dc8f510714922b371834e"},
	{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "a1aa0689d0fafa2ddc22e88b49133a06"},
}

func finalize(t *testing.T, d *Digest) string {
	t.Helper()
	sum, err := d.Finalize()
	require.NoError(t, err)
	return hex.EncodeToString(sum)
}

func TestVectors160(t *testing.T) {
	for _, v := range vectors160 {
		sum := Sum160([]byte(v.in))
		require.Equal(t, v.out, hex.EncodeToString(sum[:]), "%q", v.in)

		d := New()
		_, err := io.WriteString(d, v.in)
		require.NoError(t, err)
		require.Equal(t, v.out, hex.EncodeToString(d.Sum(nil)), "Sum %q", v.in)
		require.Equal(t, v.out, finalize(t, d), "Finalize %q", v.in)
	}
}

func TestVectors128(t *testing.T) {
	for _, v := range vectors128 {
		sum := Sum128([]byte(v.in))
		require.Equal(t, v.out, hex.EncodeToString(sum[:]), "%q", v.in)

		d := New128()
		_, err := io.WriteString(d, v.in)
		require.NoError(t, err)
		require.Equal(t, v.out, finalize(t, d), "%q", v.in)
	}
}

func TestMillionA(t *testing.T) {
	if testing.Short() {
		t.Skip("long vector")
	}
	d, chunk := New(), []byte(strings.Repeat("a", 1000))
	for i := 0; i < 1000; i++ {
		_, err := d.Write(chunk)
		require.NoError(t, err)
	}
	require.Equal(t, "52783243c1697bdbe16d37f97f68f08325dc1528", finalize(t, d))
}

func TestPaddingBoundaries(t *testing.T) {
	/* 55 bytes fits one padding block; 56 and 63 spill into a second. */
	for _, base := range []int{0, 64, 640} {
		for _, n := range []int{55, 56, 57, 62, 63, 64, 65} {
			msg := keystream.Bytes(uint64(base+n), base+n)
			want := ripemd160.New()
			want.Write(msg)
			sum := Sum160(msg)
			require.Equal(t, want.Sum(nil), sum[:], "length %d", base+n)
		}
	}
}

func TestAgainstReference(t *testing.T) {
	for n := 0; n <= 300; n++ {
		msg := keystream.Bytes(uint64(n)<<32, n)
		want := ripemd160.New()
		want.Write(msg)
		sum := Sum160(msg)
		require.Equal(t, want.Sum(nil), sum[:], "length %d", n)
	}
}

func TestStreamingEquivalence(t *testing.T) {
	msg := keystream.Bytes(1, 1000)
	for _, size := range []int{Size, Size128} {
		oneShot := func(p []byte) string {
			if size == Size {
				sum := Sum160(p)
				return hex.EncodeToString(sum[:])
			}
			sum := Sum128(p)
			return hex.EncodeToString(sum[:])
		}
		newDigest := New
		if size == Size128 {
			newDigest = New128
		}

		/* Fixed chunk sizes on either side of the block size. */
		for _, n := range []int{0, 1, 3, 7, 55, 56, 63, 64, 65, 127, 128, 129, 999} {
			for chunk := 1; chunk <= 130; chunk += 43 {
				d := newDigest()
				for p := msg[:n]; len(p) > 0; {
					c := chunk
					if c > len(p) {
						c = len(p)
					}
					_, err := d.Write(p[:c])
					require.NoError(t, err)
					_, err = d.Write(nil)
					require.NoError(t, err)
					p = p[c:]
				}
				require.Equal(t, oneShot(msg[:n]), finalize(t, d), "size %d length %d chunk %d", size, n, chunk)
			}
		}

		/* Irregular partitions drawn from the keystream. */
		cuts := keystream.Bytes(uint64(size), 256)
		for trial := 0; trial < 32; trial++ {
			d, p := newDigest(), msg
			for i := trial; len(p) > 0; i++ {
				c := int(cuts[i%len(cuts)]) % 150
				if c > len(p) {
					c = len(p)
				}
				_, err := d.Write(p[:c])
				require.NoError(t, err)
				p = p[c:]
			}
			require.Equal(t, oneShot(msg), finalize(t, d), "size %d trial %d", size, trial)
		}
	}
}

func TestDeterministicAndFixedSize(t *testing.T) {
	for _, n := range []int{0, 1, 64, 1000} {
		msg := keystream.Bytes(9, n)
		a, b := Sum160(msg), Sum160(msg)
		require.Equal(t, a, b)

		sum, err := New().Finalize()
		require.NoError(t, err)
		require.Len(t, sum, Size)

		d := New()
		d.Write(msg)
		require.Len(t, d.Sum(nil), Size)
		require.Equal(t, Size, d.Size())
		require.Equal(t, BlockSize, d.BlockSize())
		require.Equal(t, Size128, New128().Size())
	}
}

func TestSumDoesNotFinalize(t *testing.T) {
	d := New()
	io.WriteString(d, "message ")
	prefix := d.Sum([]byte("prefix"))
	require.Equal(t, "prefix", string(prefix[:6]))
	require.Len(t, prefix, 6+Size)

	io.WriteString(d, "digest")
	require.Equal(t, "5d0689ef49d2fae572b881b123a85ffa21595f36", finalize(t, d))
}

func TestFinalizedMisuse(t *testing.T) {
	d := New()
	io.WriteString(d, "abc")
	require.Equal(t, "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc", finalize(t, d))
	require.Equal(t, phaseFinalized, d.phase)
	before := *d

	n, err := d.Write([]byte("more"))
	require.ErrorIs(t, err, ErrFinalized)
	require.Zero(t, n)
	require.Equal(t, before, *d)

	_, err = d.Write(nil)
	require.ErrorIs(t, err, ErrFinalized)

	sum, err := d.Finalize()
	require.ErrorIs(t, err, ErrFinalized)
	require.Nil(t, sum)
	require.Equal(t, before, *d)

	require.PanicsWithError(t, "ripemd: Sum: "+ErrFinalized.Error(), func() { d.Sum(nil) })

	d.Reset()
	require.Equal(t, phaseEmpty, d.phase)
	require.Equal(t, "9c1185a5c5e9fc54612808977ee8f548b2258d31", finalize(t, d))
}

func TestPhases(t *testing.T) {
	d := New128()
	require.Equal(t, phaseEmpty, d.phase)
	d.Write(nil)
	require.Equal(t, phaseAccumulating, d.phase)
	require.Equal(t, "cdf26213a150dc3ecb610f18f6b38b46", finalize(t, d))
	require.Equal(t, phaseFinalized, d.phase)
}

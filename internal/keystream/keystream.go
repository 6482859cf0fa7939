// Package keystream produces reproducible pseudo-random bytes for tests and measurements. The
// same seed always yields the same bytes on every platform.
package keystream

import (
	"encoding/binary"
	"io"

	"github.com/aead/chacha20/chacha"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const rounds = 20

type reader struct{ c *chacha.Cipher }

// Reader returns an endless stream of ChaCha20 keystream keyed by seed.
func Reader(seed uint64) io.Reader {
	var key [chacha.KeySize]byte
	var nonce [chacha.NonceSize]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	binary.LittleEndian.PutUint64(key[8:], ^seed)
	c, err := chacha.NewCipher(nonce[:], key[:], rounds)
	if err != nil {
		panic(err) /* Key and nonce sizes are fixed above. */
	}
	return &reader{c}
}

func (r *reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.c.XORKeyStream(p, p)
	return len(p), nil
}

// Bytes returns the first n bytes of Reader(seed).
func Bytes(seed uint64, n int) []byte {
	b := make([]byte, n)
	_, _ = io.ReadFull(Reader(seed), b)
	return b
}

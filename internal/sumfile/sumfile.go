// Package sumfile hashes lists of targets in parallel and reads the "DIGEST  PATH" checksum
// lists that ripesum prints.
package sumfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/p7r0x7/ripemd"
	"golang.org/x/sync/errgroup"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// ErrMalformed marks a checksum list line that is not "DIGEST  PATH".
var ErrMalformed = errors.New("sumfile: improperly formatted line")

// Source opens the message a target names. Key returns the same string for every target that
// names the same message, so that message is read only once.
type Source interface {
	Open(target string) (io.ReadCloser, error)
	Key(target string) string
}

var (
	// Files treats targets as file paths, with "-" naming standard input.
	Files Source = files{}
	// Strings treats targets as the messages themselves.
	Strings Source = stringsSource{}
)

type files struct{}

func (f files) Open(target string) (io.ReadCloser, error) {
	if f.Key(target) == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(target)
}

func (files) Key(target string) string {
	if target == os.Stdin.Name() {
		return "-"
	}
	return target
}

type stringsSource struct{}

func (stringsSource) Open(target string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(target)), nil
}

func (stringsSource) Key(target string) string { return target }

// Result is the outcome of hashing one target.
type Result struct {
	Sum     []byte
	Elapsed time.Duration
	Err     error
}

// SumAll hashes every target with a digest from newDigest, running at most jobs at a time, and
// returns the results in target order. Targets src keys alike are read once.
func SumAll(targets []string, src Source, newDigest func() *ripemd.Digest, jobs int) []Result {
	if jobs < 1 {
		jobs = 1
	}
	results, first := make([]Result, len(targets)), map[string]int{}
	var g errgroup.Group
	g.SetLimit(jobs)
	keys := make([]string, len(targets))
	for i, target := range targets {
		keys[i] = src.Key(target)
		if _, ok := first[keys[i]]; ok {
			continue
		}
		first[keys[i]] = i
		g.Go(func() error {
			results[i] = sum(target, src, newDigest())
			return nil
		})
	}
	_ = g.Wait()
	for i, key := range keys {
		results[i] = results[first[key]]
	}
	return results
}

func sum(target string, src Source, d *ripemd.Digest) Result {
	start := time.Now()
	r, err := src.Open(target)
	if err != nil {
		return Result{Err: err}
	}
	defer r.Close()
	if _, err = io.Copy(d, r); err != nil {
		return Result{Err: fmt.Errorf("%s: %w", target, err)}
	}
	b, err := d.Finalize()
	return Result{Sum: b, Elapsed: time.Since(start), Err: err}
}

// Entry is one line of a checksum list.
type Entry struct {
	Sum  []byte
	Path string
}

// Parse reads a checksum list, decoding digests with decode. Blank lines are skipped. Lines that
// do not split into a decodable digest and a path yield an error wrapping ErrMalformed in their
// place, so callers can report them and keep going.
func Parse(r io.Reader, decode func(string) ([]byte, error)) ([]Entry, []error, error) {
	var entries []Entry
	var bad []error
	s, line := bufio.NewScanner(r), 0
	for s.Scan() {
		line++
		text := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		/* A '*' in place of the second space marks binary mode in coreutils lists. */
		i := strings.Index(text, "  ")
		if j := strings.Index(text, " *"); i < 0 || (j >= 0 && j < i) {
			i = j
		}
		if i <= 0 || i+2 >= len(text) {
			bad = append(bad, fmt.Errorf("line %d: %w", line, ErrMalformed))
			continue
		}
		b, err := decode(text[:i])
		if err != nil {
			bad = append(bad, fmt.Errorf("line %d: %w: %v", line, ErrMalformed, err))
			continue
		}
		entries = append(entries, Entry{b, text[i+2:]})
	}
	return entries, bad, s.Err()
}

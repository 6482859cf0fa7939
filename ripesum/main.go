package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	. "fmt"
	"github.com/p7r0x7/ripemd"
	"github.com/p7r0x7/ripemd/internal/sumfile"
	"github.com/p7r0x7/vainpath"
	. "github.com/spf13/pflag"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid = 0, 1, 2

var warnings, mismatches = 0, 0

func main() { os.Exit(program()) }

// help prints a usage menu. To consistently correctly render this menu in most terminal windows,
// its content should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "ripesum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "RIPEMD-160 and RIPEMD-128 message digests.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-bt] [--128] [-j <int>] [--quiet|no-codes] [--strict|raw] -|PATH..."+n,
		spaces, "[-bt] [--128] [-j <int>] [--quiet|no-codes] [--strict|raw] -s STRING..."+n,
		spaces, "[-b] [--128] [-j <int>] [--quiet|no-codes] [--strict] -c -|LIST..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+
		n+"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

// This program is a command-line interface for ripemd: It handles various flags and an unlimited
// number of arguments, hashing or verifying files as required by the command-line operator.
func program() int {
	if pHelp || NArg() == 0 {
		help()
		return success
	} else if pJobs < 1 {
		Fprint(os.Stderr, purp, "--jobs must be at least 1.", zero, n)
		return invalid
	} else if pCheck && (pString || pRaw) {
		Fprint(os.Stderr, purp, "--check cannot be combined with --string or --raw.", zero, n)
		return invalid
	}

	newDigest := ripemd.New
	if p128 {
		newDigest = ripemd.New128
	}
	if pCheck {
		check(newDigest)
	} else {
		digest(newDigest)
	}

	if !(pQuiet || pRaw) {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
		if mismatches == 1 {
			Fprint(os.Stderr, "1 ", purp, "computed digest did NOT match.", zero, n)
		} else if mismatches > 1 {
			Fprint(os.Stderr, mismatches, " ", purp, "computed digests did NOT match.", zero, n)
		}
	}
	if warnings > 0 || mismatches > 0 {
		return failure
	}
	return success
}

func digest(newDigest func() *ripemd.Digest) {
	src := sumfile.Files
	if pString {
		src = sumfile.Strings
	}
	targets := Args()
	results := sumfile.SumAll(targets, src, newDigest, pJobs)

	for i, target := range targets {
		r := results[i]
		if r.Err != nil {
			warn(r.Err)
			continue
		}
		if pRaw {
			os.Stdout.Write(r.Sum)
			continue
		}

		delta := ""
		if pTime {
			d := r.Elapsed
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}
		if pQuiet {
			Print(encode(r.Sum), n)
		} else if pString {
			Print(yell, encode(r.Sum), zero, `  "`, target, `"`, delta, n)
		} else if pNoCodes {
			Print(encode(r.Sum), `  `, filepath.Clean(target), delta, n)
		} else {
			Print(yell, encode(r.Sum), zero, `  `, und, vainpath.Simplify(target), zero, delta, n)
		}
	}
}

func check(newDigest func() *ripemd.Digest) {
	decode := hex.DecodeString
	if pBase64 {
		decode = base64.StdEncoding.DecodeString
	}
	for _, list := range Args() {
		r, err := sumfile.Files.Open(list)
		if err != nil {
			warn(err)
			continue
		}
		entries, bad, err := sumfile.Parse(r, decode)
		r.Close()
		if err != nil {
			warn(err)
			continue
		}
		for _, e := range bad {
			warn(Errorf("%s: %w", list, e))
		}

		paths := make([]string, len(entries))
		for i, e := range entries {
			paths[i] = e.Path
		}
		results := sumfile.SumAll(paths, sumfile.Files, newDigest, pJobs)
		for i, e := range entries {
			status := "OK"
			if results[i].Err != nil {
				warn(results[i].Err)
				status = "FAILED open or read"
			} else if !bytes.Equal(results[i].Sum, e.Sum) {
				mismatches++
				status = "FAILED"
			}
			if !pQuiet || status != "OK" {
				Print(und, e.Path, zero, ": ", yell, status, zero, n)
			}
		}
	}
	if pStrict && mismatches > 0 {
		panic(Errorf("ripesum: %d computed digests did not match", mismatches))
	}
}

func encode(sum []byte) string {
	if pBase64 {
		return base64.StdEncoding.EncodeToString(sum)
	}
	return hex.EncodeToString(sum)
}

func warn(err ...interface{}) {
	if pStrict {
		panic(err)
	}
	if !pQuiet {
		Fprint(os.Stderr, purp, Sprint(err...), zero, n)
	}
	warnings++
}

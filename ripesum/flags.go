package main

import (
	. "github.com/spf13/pflag"
	"os"
	"runtime"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pJobs, pNoCodesDefault = 0, false
var pHelp, p128, pBase64, pCheck, pNoCodes, pQuiet, pRaw, pStrict, pString, pTime bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	/* Formatting flags must be known before the help strings below are built. */
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	BoolVar(&p128, "128", false,
		purp+"use RIPEMD-128 instead of RIPEMD-160"+zero)

	BoolVarP(&pBase64, "base64", "b", false,
		purp+"render digests in base64"+zero+" (default hex)")

	BoolVarP(&pCheck, "check", "c", false,
		purp+"read 'DIGEST  PATH' lines from each argument and verify"+zero+
			n+purp+"the digest of every listed file"+zero)

	IntVarP(&pJobs, "jobs", "j", runtime.NumCPU(),
		purp+"number of targets hashed at once"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY digests"+zero+
			n+"(enables --no-codes)")

	BoolVar(&pRaw, "raw", false,
		purp+"sequentially return the unencoded, non-deliminated bytes"+zero+
			n+purp+"of each digest"+zero+" (enables --strict)")

	BoolVar(&pStrict, "strict", false,
		purp+"cause ripesum to panic on any error"+zero)

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as UTF-8 strings to be hashed"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read and hash each message"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
	pStrict = pStrict || pRaw
}

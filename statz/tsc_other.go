//go:build !amd64

package main

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

/* Without a time-stamp counter, calltime stays 0 and cycle counts are not reported. */
var calltime uint64

func tscStart() uint64 { return 0 }

func tscEnd() uint64 { return 0 }

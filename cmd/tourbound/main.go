// SPDX-License-Identifier: MIT
// Package: tourbound/cmd/tourbound
//
// main.go — entry point.

// Command tourbound generates, solves, and serves symmetric planar tour
// instances with a fully traced branch-and-bound search.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

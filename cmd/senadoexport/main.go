// Package main provides the entry point for the senadoexport CLI.
//
// senadoexport downloads current senators, legislative bills and related
// records from the Brazilian Federal Senate open-data API and writes them as
// flat tables.
//
// Usage:
//
//	senadoexport
//	senadoexport --format json --gzip --output out
//	senadoexport analyze
//
// See --help for all available options.
package main

func main() {
	Execute()
}

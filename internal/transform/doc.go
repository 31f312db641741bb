// Package transform flattens Senate API records into the fixed-schema rows of
// package model.
//
// Each method takes the list of objects returned by the senado client and
// returns one row per usable record, in input order. A record missing one of
// its required fields is skipped and logged; the rest of the batch is still
// processed. Optional fields default to the empty string.
package transform

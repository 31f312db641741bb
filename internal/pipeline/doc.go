// Package pipeline drives one export run: it fetches records from the Senate
// API, flattens them into rows and writes the resulting tables.
//
// Each stage is a Step that receives the shared model.Dataset and fills in
// its part. Steps run strictly in order because later steps depend on
// earlier results: the progress step reads the first bill found by the bill
// search, and the detail and vote steps read the first senator.
//
// Default builds the standard sequence:
//
//	fetch-senators -> search-bills -> bill-progress -> senator-detail
//	  -> senator-votes (optional) -> sessions (optional) -> export
package pipeline

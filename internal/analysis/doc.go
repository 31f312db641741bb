// Package analysis computes distributions over exported senator rows: how many
// senators each party and each state (UF) has in office.
package analysis

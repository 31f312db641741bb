// Package export writes flattened tables to files and terminals.
//
// Writers in this package accept any Table (a name, a header and string
// records) so they stay independent of the row types in the model package:
//   - CSVWriter: header row followed by one line per record
//   - JSONWriter: an array of objects keyed by column name, in column order
//   - MarkdownWriter: a run summary (resumo.md) with counts and distributions
//   - PreviewWriter: the first rows of a table as a terminal table
//
// CSV and JSON output can be gzip-compressed with WithGzip. WriteFile ties a
// writer to a file named after the table inside an output directory, creating
// the directory when needed.
package export

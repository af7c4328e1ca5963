// Package edntab turns line-delimited EDN maps into one rectangular
// table.
//
// Input is one EDN value per line. Values that parse as maps become
// records; their keyword keys are unioned, deduplicated, and sorted
// into the column set that defines the table's schema. Emission is
// strictly two-phase: [Ingest] consumes the whole input and freezes
// the column set before [Write] produces a single byte, because the
// header row must reflect every record.
//
//	t, err := edntab.Ingest(os.Stdin, os.Stderr)
//	if err != nil { ... }
//	err = edntab.Write(os.Stdout, edntab.TSV, t)
//
// Cells hold the canonical rendering of the record's value for that
// column (see [github.com/bjaus/edntab/edn.Value.String]), or the
// empty string when the record has no matching key. Every row has
// exactly one cell per column.
//
// # Formats
//
// The default format is TSV. [ParseFormat] converts a CLI flag string
// into a [Format]:
//
//   - [TSV], [CSV] — delimited text with standard field quoting
//   - [JSON], [JSONL], [YAML] — one column→cell object per record
//   - [Markdown] — pipe table
//   - [Pretty] — box-drawing table for terminals
//
// # Diagnostics
//
// Ingestion is permissive about record shape and strict about syntax.
// A top-level value that is not a map, or a map key that is not a
// keyword, draws a one-line diagnostic and the run continues. A line
// that fails to parse aborts the run with a [ParseError] carrying the
// 0-based line number and the parser's byte offsets.
package edntab

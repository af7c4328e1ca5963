package edntab

import (
	"github.com/bjaus/edntab/edn"
)

// Table holds the ingested records together with the frozen column
// set. Columns are the lexicographically sorted union of every
// keyword key seen across all records; records keep ingestion order.
type Table struct {
	columns []string
	records []edn.Value
}

// Columns returns the column set in header order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// Header returns the header row: one cell per column, in order.
func (t *Table) Header() []string { return t.Columns() }

// Row returns record i projected onto the column set. Every row has
// exactly one cell per column; a record with no matching keyword key
// for a column yields an empty cell, never a missing one.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.columns))
	for j, c := range t.columns {
		if v, ok := t.records[i].Lookup(c); ok {
			row[j] = v.String()
		}
	}
	return row
}

// objects returns the rows as column→cell maps, one per record. Used
// by the JSON, JSONL, and YAML writers; both encoders emit map keys
// in sorted order, which matches the column order.
func (t *Table) objects() []map[string]string {
	out := make([]map[string]string, 0, len(t.records))
	for i := range t.records {
		row := t.Row(i)
		obj := make(map[string]string, len(t.columns))
		for j, c := range t.columns {
			obj[c] = row[j]
		}
		out = append(out, obj)
	}
	return out
}

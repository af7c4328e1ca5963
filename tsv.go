package edntab

import (
	"encoding/csv"
	"io"
)

// writeTSV emits the header row and one row per record, tab-
// delimited. Fields containing a tab, quote, or newline are quoted,
// so the table stays rectangular no matter what the cells hold.
func writeTSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(t.Header()); err != nil {
		return err
	}
	for i := 0; i < t.Len(); i++ {
		if err := cw.Write(t.Row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

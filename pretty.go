package edntab

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// writePretty renders the table for humans with light box-drawing
// separators. Machine consumers should use one of the delimited
// formats instead.
func writePretty(w io.Writer, t *Table) error {
	var header table.Row
	for _, c := range t.Header() {
		header = append(header, c)
	}

	tw := table.NewWriter()
	tw.AppendHeader(header)
	for i := 0; i < t.Len(); i++ {
		var row table.Row
		for _, cell := range t.Row(i) {
			row = append(row, cell)
		}
		tw.AppendRow(row)
	}
	tw.SetStyle(table.StyleLight)
	tw.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	tw.Style().Options.DrawBorder = false

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

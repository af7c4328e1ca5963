package edntab

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, obj := range t.objects() {
		if err := enc.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}

package edntab

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(t.objects()); err != nil {
		return err
	}
	return enc.Close()
}

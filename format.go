package edntab

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Format represents an output format.
type Format string

const (
	TSV      Format = "tsv"
	CSV      Format = "csv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	Markdown Format = "markdown"
	Pretty   Format = "pretty"
)

var formats = []Format{TSV, CSV, JSON, JSONL, YAML, Markdown, Pretty}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders t in format f and writes it to w. A write failure is
// returned as-is; nothing is retried.
func Write(w io.Writer, f Format, t *Table) error {
	switch f {
	case TSV:
		return writeTSV(w, t)
	case CSV:
		return writeCSV(w, t)
	case JSON:
		return writeJSON(w, t)
	case JSONL:
		return writeJSONL(w, t)
	case YAML:
		return writeYAML(w, t)
	case Markdown:
		return writeMarkdown(w, t)
	case Pretty:
		return writePretty(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

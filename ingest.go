package edntab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/bjaus/edntab/edn"
)

// ParseError reports a line that could not be parsed. Ingestion stops
// at the first one; a malformed line means intent is unrecoverable
// without operator intervention.
type ParseError struct {
	Line int
	Err  *edn.SyntaxError
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Ingest consumes r line by line, one EDN value per line, and
// accumulates the maps among them into a Table. Lines are numbered
// from zero.
//
// Blank and comment-only lines are skipped silently. A top-level
// value that is not a map is dropped with a diagnostic on diag. A map
// key that is not a keyword draws a diagnostic and contributes
// nothing to the column set, but the record as a whole is kept. A
// parse failure or a read failure aborts the whole run.
//
// The returned Table is frozen: its column set reflects every record
// and nothing has been written anywhere but diag.
func Ingest(r io.Reader, diag io.Writer) (*Table, error) {
	t := &Table{}
	seen := make(map[string]bool)

	// A plain Reader instead of a Scanner: lines carry whole EDN
	// values and have no inherent length limit.
	br := bufio.NewReader(r)

	for line := 0; ; line++ {
		text, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("reading input: %w", readErr)
		}
		if text == "" && readErr == io.EOF {
			break
		}
		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")

		v, ok, err := edn.NewParser(text).Read()
		if err != nil {
			var syn *edn.SyntaxError
			if errors.As(err, &syn) {
				return nil, &ParseError{Line: line, Err: syn}
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if ok {
			if v.Kind() != edn.KindMap {
				fmt.Fprintf(diag, "Skipping non map on line %d\n", line)
			} else {
				for _, e := range v.Entries() {
					name, isKeyword := e.Key.AsKeyword()
					if !isKeyword {
						fmt.Fprintf(diag, "Skipping non keyword key: %s\n", e.Key)
						continue
					}
					if !seen[name] {
						seen[name] = true
						t.columns = append(t.columns, name)
					}
				}
				t.records = append(t.records, v)
			}
		}
		if readErr == io.EOF {
			break
		}
	}

	slices.Sort(t.columns)
	return t, nil
}

package edntab_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bjaus/edntab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustIngest(t *testing.T, input string) *edntab.Table {
	t.Helper()
	var diag bytes.Buffer
	tbl, err := edntab.Ingest(strings.NewReader(input), &diag)
	require.NoError(t, err)
	return tbl
}

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    edntab.Format
		wantErr require.ErrorAssertionFunc
	}{
		"tsv":      {input: "tsv", want: edntab.TSV, wantErr: require.NoError},
		"csv":      {input: "csv", want: edntab.CSV, wantErr: require.NoError},
		"json":     {input: "json", want: edntab.JSON, wantErr: require.NoError},
		"jsonl":    {input: "jsonl", want: edntab.JSONL, wantErr: require.NoError},
		"yaml":     {input: "yaml", want: edntab.YAML, wantErr: require.NoError},
		"markdown": {input: "markdown", want: edntab.Markdown, wantErr: require.NoError},
		"pretty":   {input: "pretty", want: edntab.Pretty, wantErr: require.NoError},
		"unknown":  {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := edntab.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatUnsupported(t *testing.T) {
	t.Parallel()
	_, err := edntab.ParseFormat("xml")
	assert.ErrorIs(t, err, edntab.ErrUnsupportedFormat)
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := edntab.Formats()
	assert.Equal(t, []edntab.Format{
		edntab.TSV, edntab.CSV, edntab.JSON, edntab.JSONL,
		edntab.YAML, edntab.Markdown, edntab.Pretty,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, edntab.TSV, edntab.Formats()[0])
}

func TestFormatString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "tsv", edntab.TSV.String())
	assert.Equal(t, "markdown", edntab.Markdown.String())
}

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "{:a 1}\n")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.Format("xml"), tbl)
	assert.ErrorIs(t, err, edntab.ErrUnsupportedFormat)
}

// --- TSV ---

func TestWriteTSV(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "{:a 1 :b 2}\n{:a 3}\n")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.TSV, tbl)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\n1\t2\n3\t\n", buf.String())
}

func TestWriteTSVQuotesDelimiter(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "{:a \"x\\ty\"}\n")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.TSV, tbl)
	require.NoError(t, err)
	assert.Equal(t, "a\n\"x\ty\"\n", buf.String())
}

func TestWriteTSVEmptyTable(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.TSV, tbl)
	require.NoError(t, err)
	assert.Equal(t, "\n", buf.String())
}

func TestWriteTSVError(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "{:a 1}\n")
	err := edntab.Write(errWriter{}, edntab.TSV, tbl)
	assert.Error(t, err)
}

// --- CSV ---

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "{:a 1 :b 2}\n{:a 3}\n")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.CSV, tbl)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n3,\n", buf.String())
}

func TestWriteCSVQuoted(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "{:a \"hello, world\"}\n")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.CSV, tbl)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"hello, world"`)
}

// --- JSON ---

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "{:a 1 :b 2}\n{:a 3}\n")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.JSON, tbl)
	require.NoError(t, err)
	assert.Equal(t, `[{"a":"1","b":"2"},{"a":"3","b":""}]`+"\n", buf.String())
}

func TestWriteJSONEmptyTable(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.JSON, tbl)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}

// --- JSONL ---

func TestWriteJSONL(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "{:a 1 :b 2}\n{:a 3}\n")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.JSONL, tbl)
	require.NoError(t, err)
	assert.Equal(t, `{"a":"1","b":"2"}`+"\n"+`{"a":"3","b":""}`+"\n", buf.String())
}

// --- YAML ---

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "{:a 1 :b 2}\n{:a 3}\n")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.YAML, tbl)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `a: "1"`)
	assert.Contains(t, out, `b: "2"`)
	assert.Contains(t, out, `b: ""`)
}

// --- Markdown ---

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "{:a 1}\n")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.Markdown, tbl)
	require.NoError(t, err)
	want := "| a   |\n| --- |\n| 1   |\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteMarkdownEmptyTable(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.Markdown, tbl)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

// --- Pretty ---

func TestWritePretty(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "{:a 1 :b 2}\n")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.Pretty, tbl)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "│")
	assert.Contains(t, out, "1")
}

// --- End to end ---

func TestNestedValuesRenderIntoCells(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, `{:a [1 2 3] :b {:c 4} :d #{5} :e (6 7) :f #inst "now"}`+"\n")
	var buf bytes.Buffer
	err := edntab.Write(&buf, edntab.TSV, tbl)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\td\te\tf\n[1,2,3]\t{c 4}\t#{5}\t(6,7)\t#inst now\n", buf.String())
}

func TestRowsMatchHeaderWidth(t *testing.T) {
	t.Parallel()
	tbl := mustIngest(t, "{:a 1}\n{:b 2}\n{:c 3 :a 4}\n")
	width := len(tbl.Header())
	for i := 0; i < tbl.Len(); i++ {
		assert.Len(t, tbl.Row(i), width)
	}
}

package edntab

import (
	"testing"

	"github.com/bjaus/edntab/edn"
	"github.com/stretchr/testify/assert"
)

func TestPadCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab ", padCell("ab", 3))
	assert.Equal(t, "abcd", padCell("abcd", 3))
	// "你" is a full-width character (2 columns).
	assert.Equal(t, "你 ", padCell("你", 3))
}

func TestObjects(t *testing.T) {
	t.Parallel()
	tbl := &Table{
		columns: []string{"a", "b"},
		records: []edn.Value{
			edn.Map(edn.Entry{Key: edn.Keyword("b"), Value: edn.Int(2)}),
		},
	}
	assert.Equal(t, []map[string]string{{"a": "", "b": "2"}}, tbl.objects())
}

func TestObjectsEmpty(t *testing.T) {
	t.Parallel()
	tbl := &Table{}
	objs := tbl.objects()
	assert.NotNil(t, objs)
	assert.Empty(t, objs)
}

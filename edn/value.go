package edn

import (
	"strconv"
	"strings"
)

// Kind represents EDN value kinds.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindString
	KindChar
	KindSymbol
	KindKeyword
	KindInt
	KindFloat
	KindList
	KindVector
	KindMap
	KindSet
	KindTagged
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindChar:
		return "char"
	case KindSymbol:
		return "symbol"
	case KindKeyword:
		return "keyword"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	case KindVector:
		return "vector"
	case KindMap:
		return "map"
	case KindSet:
		return "set"
	case KindTagged:
		return "tagged"
	default:
		return "unknown"
	}
}

// Value is a parsed EDN value. Values are immutable once constructed;
// the zero Value is nil.
type Value struct {
	kind Kind

	// Scalar payloads (only one valid based on kind). strVal doubles as
	// the string content, symbol name, keyword name, or tag name.
	boolVal  bool
	intVal   int64
	floatVal float64
	charVal  rune
	strVal   string

	// Container payloads.
	elems   []Value // list, vector, set
	entries []Entry // map, insertion order preserved
	inner   *Value  // tagged
}

// Entry is a single key-value pair of a map.
type Entry struct {
	Key   Value
	Value Value
}

// ============================================================
// Constructors
// ============================================================

// Nil creates a nil value.
func Nil() Value {
	return Value{}
}

// Bool creates a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, boolVal: v}
}

// Str creates a string value.
func Str(v string) Value {
	return Value{kind: KindString, strVal: v}
}

// Char creates a character value.
func Char(v rune) Value {
	return Value{kind: KindChar, charVal: v}
}

// Symbol creates a symbol with the given name.
func Symbol(name string) Value {
	return Value{kind: KindSymbol, strVal: name}
}

// Keyword creates a keyword with the given name. The name carries no
// leading colon.
func Keyword(name string) Value {
	return Value{kind: KindKeyword, strVal: name}
}

// Int creates an integer value.
func Int(v int64) Value {
	return Value{kind: KindInt, intVal: v}
}

// Float creates a float value.
func Float(v float64) Value {
	return Value{kind: KindFloat, floatVal: v}
}

// List creates a list value.
func List(elems ...Value) Value {
	return Value{kind: KindList, elems: elems}
}

// Vector creates a vector value.
func Vector(elems ...Value) Value {
	return Value{kind: KindVector, elems: elems}
}

// Map creates a map value from key-value pairs. Entry order is kept
// as given.
func Map(entries ...Entry) Value {
	return Value{kind: KindMap, entries: entries}
}

// Set creates a set value. Elements are kept as given; deduplication
// is the parser's concern.
func Set(elems ...Value) Value {
	return Value{kind: KindSet, elems: elems}
}

// Tagged creates a tagged value.
func Tagged(tag string, v Value) Value {
	return Value{kind: KindTagged, strVal: tag, inner: &v}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v Value) Kind() Kind {
	return v.kind
}

// AsKeyword returns the keyword name, with ok reporting whether the
// value is a keyword.
func (v Value) AsKeyword() (string, bool) {
	if v.kind != KindKeyword {
		return "", false
	}
	return v.strVal, true
}

// Entries returns the entries of a map value in insertion order, or
// nil for any other kind. The returned slice must not be modified.
func (v Value) Entries() []Entry {
	if v.kind != KindMap {
		return nil
	}
	return v.entries
}

// Elems returns the elements of a list, vector, or set value, or nil
// for any other kind. The returned slice must not be modified.
func (v Value) Elems() []Value {
	if v.kind != KindList && v.kind != KindVector && v.kind != KindSet {
		return nil
	}
	return v.elems
}

// Lookup returns the value mapped to the keyword with the given name.
// Only keyword keys match; ok is false for non-map values and for
// absent keys. When a key appears more than once the last entry wins.
func (v Value) Lookup(name string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	for i := len(v.entries) - 1; i >= 0; i-- {
		e := v.entries[i]
		if e.Key.kind == KindKeyword && e.Key.strVal == name {
			return e.Value, true
		}
	}
	return Value{}, false
}

// ============================================================
// Printer
// ============================================================

// String renders the value in its canonical textual form. The
// rendering is total and deterministic but not round-trippable:
// strings print raw without quotes, keywords drop the leading colon,
// and collections join their elements with commas. Tagged values
// render as "#tag value" at any depth.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.kind {
	case KindNil:
		b.WriteString("nil")
	case KindBool:
		if v.boolVal {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindString:
		b.WriteString(v.strVal)
	case KindChar:
		b.WriteRune(v.charVal)
	case KindSymbol, KindKeyword:
		b.WriteString(v.strVal)
	case KindInt:
		b.WriteString(strconv.FormatInt(v.intVal, 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.floatVal, 'g', -1, 64))
	case KindList:
		v.writeSeq(b, "(", ")")
	case KindVector:
		v.writeSeq(b, "[", "]")
	case KindMap:
		b.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				b.WriteByte(',')
			}
			e.Key.write(b)
			b.WriteByte(' ')
			e.Value.write(b)
		}
		b.WriteByte('}')
	case KindSet:
		v.writeSeq(b, "#{", "}")
	case KindTagged:
		b.WriteByte('#')
		b.WriteString(v.strVal)
		b.WriteByte(' ')
		v.inner.write(b)
	}
}

func (v Value) writeSeq(b *strings.Builder, open, closing string) {
	b.WriteString(open)
	for i, e := range v.elems {
		if i > 0 {
			b.WriteByte(',')
		}
		e.write(b)
	}
	b.WriteString(closing)
}

package edn

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// SyntaxError reports a malformed EDN form. Lo and Hi are byte
// offsets delimiting the offending span of the input.
type SyntaxError struct {
	Lo      int
	Hi      int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("(%d, %d): %s", e.Lo, e.Hi, e.Message)
}

// Parser reads EDN values from a string. Whitespace, commas, and
// line comments between values are skipped; #_ discards the form
// that follows it.
type Parser struct {
	input string
	pos   int
}

// NewParser returns a Parser over input.
func NewParser(input string) *Parser {
	return &Parser{input: input}
}

// Read returns the next value in the input. ok is false when only
// whitespace, comments, and discarded forms remain. Any error is a
// *SyntaxError.
func (p *Parser) Read() (v Value, ok bool, err error) {
	return p.next()
}

func (p *Parser) next() (Value, bool, error) {
	if err := p.skipDiscards(); err != nil {
		return Value{}, false, err
	}
	if p.pos >= len(p.input) {
		return Value{}, false, nil
	}
	v, err := p.readValue()
	if err != nil {
		return Value{}, false, err
	}
	return v, true, nil
}

// skipDiscards consumes whitespace, comments, and any #_ forms. The
// container loops call it before checking for their closing
// delimiter, so a discard right before a closer is fine: [1 #_ 2]
// is [1]. Stacked discards compose; #_ #_ 1 2 drops both forms.
func (p *Parser) skipDiscards() error {
	for {
		p.skipSpace()
		if p.pos+1 < len(p.input) && p.input[p.pos] == '#' && p.input[p.pos+1] == '_' {
			lo := p.pos
			p.pos += 2
			if _, ok, err := p.next(); err != nil {
				return err
			} else if !ok {
				return p.errf(lo, p.pos, "expected a value after #_")
			}
			continue
		}
		return nil
	}
}

func (p *Parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', ',', '\r', '\n':
			p.pos++
		case ';':
			for p.pos < len(p.input) && p.input[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *Parser) readValue() (Value, error) {
	c := p.input[p.pos]
	switch {
	case c == '(':
		open := p.pos
		p.pos++
		return p.readSeq(open, ')', KindList)
	case c == '[':
		open := p.pos
		p.pos++
		return p.readSeq(open, ']', KindVector)
	case c == '{':
		return p.readMap()
	case c == '#':
		return p.readDispatch()
	case c == '"':
		return p.readString()
	case c == '\\':
		return p.readChar()
	case c == ':':
		return p.readKeyword()
	case isDigit(c) || ((c == '+' || c == '-') && p.pos+1 < len(p.input) && isDigit(p.input[p.pos+1])):
		return p.readNumber()
	case c == ')' || c == ']' || c == '}':
		return Value{}, p.errf(p.pos, p.pos+1, "unexpected %q", string(c))
	case isSymbolByte(c):
		return p.readSymbol(), nil
	default:
		return Value{}, p.errf(p.pos, p.pos+1, "unexpected character %q", string(c))
	}
}

func (p *Parser) readSeq(open int, closing byte, kind Kind) (Value, error) {
	var elems []Value
	var seen map[string]bool
	if kind == KindSet {
		seen = make(map[string]bool)
	}
	for {
		if err := p.skipDiscards(); err != nil {
			return Value{}, err
		}
		if p.pos < len(p.input) && p.input[p.pos] == closing {
			p.pos++
			break
		}
		v, ok, err := p.next()
		if err != nil {
			return Value{}, err
		}
		if !ok {
			return Value{}, p.errf(open, p.pos, "unclosed %s", kind)
		}
		if kind == KindSet {
			if key := v.String(); seen[key] {
				continue
			} else {
				seen[key] = true
			}
		}
		elems = append(elems, v)
	}
	switch kind {
	case KindList:
		return List(elems...), nil
	case KindVector:
		return Vector(elems...), nil
	default:
		return Set(elems...), nil
	}
}

func (p *Parser) readMap() (Value, error) {
	open := p.pos
	p.pos++
	var entries []Entry
	for {
		if err := p.skipDiscards(); err != nil {
			return Value{}, err
		}
		if p.pos < len(p.input) && p.input[p.pos] == '}' {
			p.pos++
			return Map(entries...), nil
		}
		k, ok, err := p.next()
		if err != nil {
			return Value{}, err
		}
		if !ok {
			return Value{}, p.errf(open, p.pos, "unclosed map")
		}
		if err := p.skipDiscards(); err != nil {
			return Value{}, err
		}
		if p.pos >= len(p.input) {
			return Value{}, p.errf(open, p.pos, "unclosed map")
		}
		if p.input[p.pos] == '}' {
			p.pos++
			return Value{}, p.errf(open, p.pos, "map literal must contain an even number of forms")
		}
		v, ok, err := p.next()
		if err != nil {
			return Value{}, err
		}
		if !ok {
			return Value{}, p.errf(open, p.pos, "unclosed map")
		}
		entries = append(entries, Entry{Key: k, Value: v})
	}
}

// readDispatch handles the forms that follow a '#': sets and tagged
// values. #_ never reaches here.
func (p *Parser) readDispatch() (Value, error) {
	open := p.pos
	if p.pos+1 >= len(p.input) {
		return Value{}, p.errf(open, p.pos+1, "unexpected \"#\"")
	}
	if p.input[p.pos+1] == '{' {
		p.pos += 2
		return p.readSeq(open, '}', KindSet)
	}
	p.pos++
	start := p.pos
	for p.pos < len(p.input) && isSymbolByte(p.input[p.pos]) {
		p.pos++
	}
	tag := p.input[start:p.pos]
	if tag == "" {
		return Value{}, p.errf(open, min(p.pos+1, len(p.input)), "invalid tag")
	}
	inner, ok, err := p.next()
	if err != nil {
		return Value{}, err
	}
	if !ok {
		return Value{}, p.errf(open, p.pos, "expected a value after tag %s", tag)
	}
	return Tagged(tag, inner), nil
}

func (p *Parser) readString() (Value, error) {
	open := p.pos
	p.pos++
	var b strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch c {
		case '"':
			p.pos++
			return Str(b.String()), nil
		case '\\':
			esc := p.pos
			p.pos++
			if p.pos >= len(p.input) {
				return Value{}, p.errf(open, p.pos, "unterminated string")
			}
			switch p.input[p.pos] {
			case '"':
				b.WriteByte('"')
				p.pos++
			case '\\':
				b.WriteByte('\\')
				p.pos++
			case 'n':
				b.WriteByte('\n')
				p.pos++
			case 't':
				b.WriteByte('\t')
				p.pos++
			case 'r':
				b.WriteByte('\r')
				p.pos++
			case 'u':
				r, err := p.readUnicode(esc)
				if err != nil {
					return Value{}, err
				}
				b.WriteRune(r)
			default:
				return Value{}, p.errf(esc, p.pos+1, "invalid escape %q", p.input[esc:p.pos+1])
			}
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return Value{}, p.errf(open, p.pos, "unterminated string")
}

// readUnicode parses the XXXX of a \uXXXX escape. p.pos is at the
// 'u'; esc is the offset of the backslash.
func (p *Parser) readUnicode(esc int) (rune, error) {
	p.pos++
	if p.pos+4 > len(p.input) {
		return 0, p.errf(esc, len(p.input), "invalid unicode escape")
	}
	digits := p.input[p.pos : p.pos+4]
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, p.errf(esc, p.pos+4, "invalid unicode escape %q", "\\u"+digits)
	}
	p.pos += 4
	return rune(n), nil
}

func (p *Parser) readChar() (Value, error) {
	open := p.pos
	p.pos++
	if p.pos >= len(p.input) {
		return Value{}, p.errf(open, p.pos, "invalid character literal")
	}
	first, size := utf8.DecodeRuneInString(p.input[p.pos:])
	p.pos += size
	start := p.pos - size
	for p.pos < len(p.input) && isAlnum(p.input[p.pos]) {
		p.pos++
	}
	tok := p.input[start:p.pos]
	if utf8.RuneCountInString(tok) == 1 {
		return Char(first), nil
	}
	switch tok {
	case "newline":
		return Char('\n'), nil
	case "space":
		return Char(' '), nil
	case "tab":
		return Char('\t'), nil
	case "return":
		return Char('\r'), nil
	}
	if len(tok) == 5 && tok[0] == 'u' {
		if n, err := strconv.ParseUint(tok[1:], 16, 32); err == nil {
			return Char(rune(n)), nil
		}
	}
	return Value{}, p.errf(open, p.pos, "invalid character literal %q", "\\"+tok)
}

func (p *Parser) readKeyword() (Value, error) {
	open := p.pos
	p.pos++
	start := p.pos
	for p.pos < len(p.input) && isSymbolByte(p.input[p.pos]) {
		p.pos++
	}
	name := p.input[start:p.pos]
	if name == "" {
		return Value{}, p.errf(open, min(p.pos+1, len(p.input)), "invalid keyword")
	}
	return Keyword(name), nil
}

func (p *Parser) readNumber() (Value, error) {
	start := p.pos
	if c := p.input[p.pos]; c == '+' || c == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}
	isFloat := false
	if p.pos < len(p.input) && p.input[p.pos] == '.' {
		isFloat = true
		p.pos++
		for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
			p.pos++
		}
	}
	if p.pos < len(p.input) && (p.input[p.pos] == 'e' || p.input[p.pos] == 'E') {
		isFloat = true
		p.pos++
		if p.pos < len(p.input) && (p.input[p.pos] == '+' || p.input[p.pos] == '-') {
			p.pos++
		}
		for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
			p.pos++
		}
	}
	// Trailing constituent characters make the whole token invalid,
	// not a number followed by a symbol.
	for p.pos < len(p.input) && isSymbolByte(p.input[p.pos]) {
		p.pos++
	}
	text := p.input[start:p.pos]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, p.errf(start, p.pos, "invalid number %q", text)
		}
		return Float(f), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Value{}, p.errf(start, p.pos, "invalid number %q", text)
	}
	return Int(i), nil
}

func (p *Parser) readSymbol() Value {
	start := p.pos
	for p.pos < len(p.input) && isSymbolByte(p.input[p.pos]) {
		p.pos++
	}
	switch text := p.input[start:p.pos]; text {
	case "nil":
		return Nil()
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	default:
		return Symbol(text)
	}
}

func (p *Parser) errf(lo, hi int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Lo: lo, Hi: hi, Message: fmt.Sprintf(format, args...)}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c)
}

func isSymbolByte(c byte) bool {
	if isAlnum(c) || c >= utf8.RuneSelf {
		return true
	}
	switch c {
	case '.', '*', '+', '!', '-', '_', '?', '$', '%', '&', '=', '<', '>', '/', '\'':
		return true
	}
	return false
}

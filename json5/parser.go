package json5

import (
	"strings"

	"github.com/Ed94/zpl-sub000/adt"
	"github.com/Ed94/zpl-sub000/allocator"
)

type parser struct {
	backing allocator.Allocator
	buf     []byte
	pos     int
}

// Parse parses buf as JSON5 and returns the root node. A top-level document
// without enclosing braces is accepted and marked CfgMode, per spec.md §4.3.
func Parse(backing allocator.Allocator, buf []byte) (*adt.Node, error) {
	p := &parser{backing: backing, buf: buf}
	p.skipSpace()

	root, err := adt.MakeBranch(backing, "", false)
	if err != nil {
		return nil, err
	}

	if p.peek() == '{' {
		p.pos++
		if err := p.parseEntries(root, '}'); err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != '}' {
			return nil, newErr(ErrObjectEndPairMismatched, "Parse")
		}
		p.pos++
	} else {
		root.CfgMode = true
		if err := p.parseEntries(root, 0); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func (p *parser) peek() byte {
	if p.pos >= len(p.buf) {
		return 0
	}
	return p.buf[p.pos]
}

func (p *parser) peekAt(n int) byte {
	if p.pos+n >= len(p.buf) {
		return 0
	}
	return p.buf[p.pos+n]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.buf) {
		c := p.buf[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			p.pos++
		case c == '/' && p.peekAt(1) == '/':
			for p.pos < len(p.buf) && p.buf[p.pos] != '\n' {
				p.pos++
			}
		case c == '/' && p.peekAt(1) == '*':
			p.pos += 2
			for p.pos < len(p.buf) && !(p.buf[p.pos] == '*' && p.peekAt(1) == '/') {
				p.pos++
			}
			p.pos += 2
		default:
			return
		}
	}
}

// parseEntries parses a comma/pipe/newline-delimited sequence of key:value
// pairs into parent (an OBJECT), stopping at end (a closing brace byte) or
// EOF when end == 0 (cfg_mode top level).
func (p *parser) parseEntries(parent *adt.Node, end byte) error {
	for {
		p.skipSpace()
		if p.pos >= len(p.buf) {
			if end != 0 {
				return newErr(ErrObjectEndPairMismatched, "parseEntries")
			}
			return nil
		}
		if p.peek() == end && end != 0 {
			return nil
		}

		name, nameStyle, err := p.parseName()
		if err != nil {
			return err
		}
		p.skipSpace()
		assign, ok := p.parseAssign()
		if !ok {
			return newErr(ErrInvalidAssignment, "parseEntries")
		}
		p.skipSpace()

		child := adt.Alloc(parent)
		child.SetName(name)
		child.NameStyle = nameStyle
		child.AssignStyle = assign
		if err := p.parseValue(child); err != nil {
			return err
		}

		spaceStart := p.pos
		p.skipSpace()
		if p.pos >= len(p.buf) {
			if end != 0 {
				return newErr(ErrObjectEndPairMismatched, "parseEntries")
			}
			return nil
		}
		c := p.peek()
		if c == end && end != 0 {
			return nil
		}
		delim, ok := p.parseDelim()
		if ok {
			parent.DelimStyle = delim
			continue
		}
		if end == 0 {
			// cfg_mode: entries separated only by whitespace/newline.
			continue
		}
		if strings.Contains(string(p.buf[spaceStart:p.pos]), "\n") {
			parent.DelimStyle = adt.DelimNewline
			continue
		}
		return newErr(ErrObjectEndPairMismatched, "parseEntries")
	}
}

func (p *parser) parseDelim() (adt.DelimStyle, bool) {
	switch p.peek() {
	case ',':
		p.pos++
		return adt.DelimComma, true
	case '|':
		p.pos++
		return adt.DelimPipe, true
	case '\n':
		p.pos++
		return adt.DelimNewline, true
	}
	return adt.DelimComma, false
}

func (p *parser) parseAssign() (adt.AssignStyle, bool) {
	switch p.peek() {
	case ':':
		p.pos++
		return adt.AssignColon, true
	case '=':
		p.pos++
		return adt.AssignEqual, true
	case '|':
		p.pos++
		return adt.AssignPipe, true
	}
	return adt.AssignColon, false
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (p *parser) parseName() (string, adt.NameStyle, error) {
	c := p.peek()
	if c == '"' || c == '\'' {
		s, err := p.parseQuoted(c)
		if err != nil {
			return "", adt.NameNone, err
		}
		if c == '"' {
			return s, adt.NameDoubleQuote, nil
		}
		return s, adt.NameSingleQuote, nil
	}

	start := p.pos
	for p.pos < len(p.buf) && isIdentByte(p.buf[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", adt.NameNone, newErr(ErrInvalidName, "parseName")
	}
	raw := string(p.buf[start:p.pos])
	if strings.ContainsRune(raw, '\\') {
		return "", adt.NameNone, newErr(ErrInvalidName, "parseName")
	}
	return raw, adt.NameNone, nil
}

var escapeChars = map[byte]byte{
	'n': '\n', 't': '\t', 'r': '\r', 'b': '\b', 'f': '\f',
	'"': '"', '\'': '\'', '\\': '\\', '/': '/', '\n': '\n',
}

func (p *parser) parseQuoted(quote byte) (string, error) {
	p.pos++ // opening quote
	var sb strings.Builder
	for {
		if p.pos >= len(p.buf) {
			return "", newErr(ErrInvalidValue, "parseQuoted")
		}
		c := p.buf[p.pos]
		if c == quote {
			p.pos++
			return sb.String(), nil
		}
		if c == '\\' {
			p.pos++
			if p.pos >= len(p.buf) {
				return "", newErr(ErrInvalidValue, "parseQuoted")
			}
			esc := p.buf[p.pos]
			if repl, ok := escapeChars[esc]; ok {
				sb.WriteByte(repl)
				p.pos++
				continue
			}
			if esc == 'u' && p.pos+4 < len(p.buf) {
				sb.WriteRune(decodeHex4(p.buf[p.pos+1 : p.pos+5]))
				p.pos += 5
				continue
			}
			sb.WriteByte(esc)
			p.pos++
			continue
		}
		sb.WriteByte(c)
		p.pos++
	}
}

func decodeHex4(b []byte) rune {
	var v rune
	for _, c := range b {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			v |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= rune(c-'A') + 10
		}
	}
	return v
}

var keywordProps = map[string]adt.Props{
	"true":      adt.PropTrue,
	"false":     adt.PropFalse,
	"null":      adt.PropNull,
	"NaN":       adt.PropNaN,
	"-NaN":      adt.PropNaNNeg,
	"Infinity":  adt.PropInfinity,
	"-Infinity": adt.PropInfinityNeg,
}

func (p *parser) parseValue(n *adt.Node) error {
	c := p.peek()
	switch {
	case c == '{':
		p.pos++
		if err := n.InitBranch(p.backing, "", false); err != nil {
			return err
		}
		if err := p.parseEntries(n, '}'); err != nil {
			return err
		}
		p.skipSpace()
		if p.peek() != '}' {
			return newErr(ErrObjectEndPairMismatched, "parseValue")
		}
		p.pos++
		return nil

	case c == '[':
		return p.parseArray(n)

	case c == '"' || c == '\'':
		s, err := p.parseQuoted(c)
		if err != nil {
			return err
		}
		n.SetString(s, false)
		n.QuoteStyle = nameStyleForQuote(c)
		return nil

	case c == '`':
		s, err := p.parseQuoted('`')
		if err != nil {
			return err
		}
		n.SetString(s, true)
		return nil
	}

	for kw, props := range keywordProps {
		if p.hasPrefixWord(kw) {
			p.pos += len(kw)
			n.Kind = adt.KindReal
			n.Props = props
			return nil
		}
	}

	end := adt.ParseNumber(n, p.buf, p.pos)
	if n.Kind != adt.KindInteger && n.Kind != adt.KindReal {
		return newErr(ErrInvalidValue, "parseValue")
	}
	p.pos = end
	return nil
}

func nameStyleForQuote(q byte) adt.NameStyle {
	if q == '"' {
		return adt.NameDoubleQuote
	}
	return adt.NameSingleQuote
}

func (p *parser) hasPrefixWord(kw string) bool {
	if p.pos+len(kw) > len(p.buf) {
		return false
	}
	if string(p.buf[p.pos:p.pos+len(kw)]) != kw {
		return false
	}
	next := p.peekAt(len(kw))
	return !isIdentByte(next)
}

func (p *parser) parseArray(n *adt.Node) error {
	p.pos++ // '['
	if err := n.InitBranch(p.backing, "", true); err != nil {
		return err
	}

	for {
		p.skipSpace()
		if p.pos >= len(p.buf) {
			return newErr(ErrArrayLeftOpen, "parseArray")
		}
		if p.peek() == ']' {
			p.pos++
			return nil
		}
		child := adt.Alloc(n)
		if err := p.parseValue(child); err != nil {
			return err
		}
		p.skipSpace()
		if p.peek() == ']' {
			p.pos++
			return nil
		}
		delim, ok := p.parseDelim()
		if !ok {
			return newErr(ErrArrayLeftOpen, "parseArray")
		}
		n.DelimStyle = delim
	}
}

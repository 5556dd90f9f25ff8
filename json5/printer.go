package json5

import (
	"io"
	"strings"

	"github.com/Ed94/zpl-sub000/adt"
	"github.com/Ed94/zpl-sub000/zplprint"
)

// Write prints root per spec.md §4.3: braces unless CfgMode, each child
// re-emitted with its recorded quoting/assignment/delimiter style. Spacing
// is fixed ("{ ", ": ", ", ", " }") and comments are not kept, so a
// freshly-parsed tree prints back byte-for-byte only when its input used
// that spacing. A CfgMode root prints one entry per line and ends with a
// trailing newline; braced output has no trailing newline.
func Write(w io.Writer, root *adt.Node) error {
	p := zplprint.New(w)
	var sb strings.Builder
	writeContainer(&sb, root, true)
	p.WriteString(sb.String())
	return p.Flush()
}

// WriteString is a convenience wrapper returning the printed text directly.
func WriteString(root *adt.Node) string {
	var sb strings.Builder
	writeContainer(&sb, root, true)
	return sb.String()
}

func sepFor(d adt.DelimStyle) string {
	b := d.Byte()
	if b == '\n' {
		return "\n"
	}
	return string(b) + " "
}

func quoteName(name string, style adt.NameStyle) string {
	switch style {
	case adt.NameDoubleQuote:
		return `"` + escapeQuoted(name, '"') + `"`
	case adt.NameSingleQuote:
		return `'` + escapeQuoted(name, '\'') + `'`
	default:
		return name
	}
}

func quoteValueString(n *adt.Node) string {
	if n.Kind == adt.KindMultistring {
		return "`" + escapeQuoted(n.String(), '`') + "`"
	}
	style := n.QuoteStyle
	if style == adt.NameNone {
		style = adt.NameDoubleQuote
	}
	if style == adt.NameSingleQuote {
		return `'` + escapeQuoted(n.String(), '\'') + `'`
	}
	return `"` + escapeQuoted(n.String(), '"') + `"`
}

const hexDigits = "0123456789abcdef"

// escapeQuoted re-escapes s for the given quote byte, matching the
// control/backslash/quote coverage of jsonenc.AppendString (jsonenc/string.go)
// so that a decoded escape sequence (parser.go's escapeChars/parseQuoted)
// round-trips back through WriteString as an escape rather than a raw byte.
func escapeQuoted(s string, quote byte) string {
	needsEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c == '\\' || c == quote {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == quote || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\b':
			sb.WriteString(`\b`)
		case c == '\f':
			sb.WriteString(`\f`)
		case c < 0x20:
			sb.WriteString(`\u00`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0xF])
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func writeValue(sb *strings.Builder, n *adt.Node) {
	switch n.Kind {
	case adt.KindObject, adt.KindArray:
		writeContainer(sb, n, false)
	case adt.KindString, adt.KindMultistring:
		sb.WriteString(quoteValueString(n))
	default:
		sb.WriteString(adt.PrintNumber(n))
	}
}

func writeContainer(sb *strings.Builder, n *adt.Node, isRoot bool) {
	if n.Kind == adt.KindArray {
		sb.WriteByte('[')
		sep := sepFor(n.DelimStyle)
		for i, c := range n.Children() {
			if i > 0 {
				sb.WriteString(sep)
			}
			writeValue(sb, c)
		}
		sb.WriteByte(']')
		return
	}

	if n.CfgMode {
		for i, c := range n.Children() {
			if i > 0 {
				sb.WriteByte('\n')
			}
			writeEntry(sb, c)
		}
		sb.WriteByte('\n')
		return
	}

	sb.WriteString("{ ")
	sep := sepFor(n.DelimStyle)
	for i, c := range n.Children() {
		if i > 0 {
			sb.WriteString(sep)
		}
		writeEntry(sb, c)
	}
	sb.WriteString(" }")
}

func writeEntry(sb *strings.Builder, c *adt.Node) {
	sb.WriteString(quoteName(c.Name(), c.NameStyle))
	sb.WriteByte(c.AssignStyle.Byte())
	sb.WriteByte(' ')
	writeValue(sb, c)
}

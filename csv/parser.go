package csv

import (
	"strings"

	"github.com/Ed94/zpl-sub000/adt"
	"github.com/Ed94/zpl-sub000/allocator"
)

// numericCharset is the character set a bare field must be drawn from
// entirely to be re-interpreted as a number (spec.md §4.4).
const numericCharset = "0123456789ABCDEFabcdefxX+-.eE"

// Parse reads buf as a CSV table, delimited by delim (typically ','). If
// hasHeader, the first row's values become each column's name and are
// removed from the column's child sequence.
func Parse(backing allocator.Allocator, buf []byte, delim byte, hasHeader bool) (*adt.Node, error) {
	root, err := adt.MakeBranch(backing, "", true)
	if err != nil {
		return nil, err
	}

	pos := 0
	columns := []*adt.Node(nil)
	rowCount := 0

	for pos < len(buf) {
		row, newPos, err := parseRow(buf, pos, delim, backing)
		if err != nil {
			return nil, err
		}
		pos = newPos

		if columns == nil {
			for range row {
				col := adt.Alloc(root)
				if err := col.InitBranch(backing, "", true); err != nil {
					return nil, err
				}
				columns = append(columns, col)
			}
		}
		if len(row) != len(columns) {
			return nil, newErr(ErrMismatchedRows, "Parse")
		}
		for i, field := range row {
			dst := adt.Alloc(columns[i])
			assignField(dst, field)
		}
		rowCount++
	}

	if hasHeader && rowCount > 0 {
		for _, col := range columns {
			children := col.Children()
			if len(children) == 0 {
				continue
			}
			header := children[0]
			col.SetName(scalarString(header))
			adt.RemoveNode(header)
		}
	}

	return root, nil
}

type field struct {
	text    string
	numeric bool
}

// parseRow parses one newline-terminated row starting at pos, returning the
// field values and the position just past the row's terminator (or EOF).
func parseRow(buf []byte, pos int, delim byte, backing allocator.Allocator) ([]field, int, error) {
	var fields []field
	for {
		if pos < len(buf) && buf[pos] == '"' {
			f, next, err := parseQuotedField(buf, pos)
			if err != nil {
				return nil, 0, err
			}
			fields = append(fields, field{text: f})
			pos = next
		} else {
			start := pos
			for pos < len(buf) && buf[pos] != delim && buf[pos] != '\n' && buf[pos] != '\r' {
				pos++
			}
			raw := strings.TrimRight(string(buf[start:pos]), " \t")
			fields = append(fields, field{text: raw, numeric: isNumericField(raw)})
		}

		if pos >= len(buf) {
			return fields, pos, nil
		}
		if buf[pos] == delim {
			pos++
			continue
		}
		if buf[pos] == '\r' {
			pos++
		}
		if pos < len(buf) && buf[pos] == '\n' {
			pos++
		}
		return fields, pos, nil
	}
}

func isNumericField(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(numericCharset, s[i]) < 0 {
			return false
		}
	}
	return true
}

// parseQuotedField consumes a "-delimited field, unescaping "" to ", and
// returns the position just past the closing quote.
func parseQuotedField(buf []byte, pos int) (string, int, error) {
	pos++ // opening quote
	var sb strings.Builder
	for {
		if pos >= len(buf) {
			return "", 0, newErr(ErrUnexpectedEndOfInput, "parseQuotedField")
		}
		if buf[pos] == '"' {
			if pos+1 < len(buf) && buf[pos+1] == '"' {
				sb.WriteByte('"')
				pos += 2
				continue
			}
			pos++
			return sb.String(), pos, nil
		}
		sb.WriteByte(buf[pos])
		pos++
	}
}

func assignField(dst *adt.Node, f field) {
	if f.numeric {
		end := adt.ParseNumber(dst, []byte(f.text), 0)
		if end == len(f.text) && (dst.Kind == adt.KindInteger || dst.Kind == adt.KindReal) {
			return
		}
	}
	dst.SetString(f.text, false)
}

func scalarString(n *adt.Node) string {
	switch n.Kind {
	case adt.KindString, adt.KindMultistring:
		return n.String()
	case adt.KindInteger, adt.KindReal:
		return adt.PrintNumber(n)
	default:
		return ""
	}
}

package csv

import (
	"io"
	"strings"

	"github.com/Ed94/zpl-sub000/adt"
	"github.com/Ed94/zpl-sub000/zplprint"
)

// Write prints root (an ARRAY of column ARRAYs) as delim-separated rows,
// emitting a header row first when any column has a recorded name.
func Write(w io.Writer, root *adt.Node, delim byte) error {
	p := zplprint.New(w)
	var sb strings.Builder
	writeTable(&sb, root, delim)
	p.WriteString(sb.String())
	return p.Flush()
}

// WriteString is a convenience wrapper returning the printed text directly.
func WriteString(root *adt.Node, delim byte) string {
	var sb strings.Builder
	writeTable(&sb, root, delim)
	return sb.String()
}

func writeTable(sb *strings.Builder, root *adt.Node, delim byte) {
	columns := root.Children()
	if len(columns) == 0 {
		return
	}

	hasHeader := false
	for _, c := range columns {
		if c.HasName() {
			hasHeader = true
			break
		}
	}

	if hasHeader {
		for i, c := range columns {
			if i > 0 {
				sb.WriteByte(delim)
			}
			sb.WriteString(fieldText(nameField(c)))
		}
		sb.WriteByte('\n')
	}

	rows := 0
	if len(columns) > 0 {
		rows = columns[0].Len()
	}
	for r := 0; r < rows; r++ {
		for i, c := range columns {
			if i > 0 {
				sb.WriteByte(delim)
			}
			children := c.Children()
			if r < len(children) {
				sb.WriteString(fieldText(children[r]))
			}
		}
		sb.WriteByte('\n')
	}
}

func nameField(c *adt.Node) string { return c.Name() }

func fieldText(value any) string {
	switch v := value.(type) {
	case string:
		if strings.ContainsAny(v, "\",\n") {
			return `"` + adt.PrintString(v, `"`, '"') + `"`
		}
		return v
	case *adt.Node:
		switch v.Kind {
		case adt.KindInteger, adt.KindReal:
			return adt.PrintNumber(v)
		default:
			return fieldText(v.String())
		}
	default:
		return ""
	}
}

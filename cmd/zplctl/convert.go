package main

import (
	"fmt"
	"os"

	"github.com/Ed94/zpl-sub000/adt"
	"github.com/Ed94/zpl-sub000/allocator"
	"github.com/Ed94/zpl-sub000/csv"
	"github.com/Ed94/zpl-sub000/json5"
)

func runConvert(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("convert: want <direction> <in> <out>")
	}
	direction, inPath, outPath := args[0], args[1], args[2]

	in, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("convert: read %s: %w", inPath, err)
	}

	backing := allocator.NewHeap()

	var out string
	switch direction {
	case "json5-to-csv":
		root, err := json5.Parse(backing, in)
		if err != nil {
			return fmt.Errorf("convert: parse json5: %w", err)
		}
		table, err := rowsToTable(backing, root)
		if err != nil {
			return fmt.Errorf("convert: reshape rows to table: %w", err)
		}
		out = csv.WriteString(table, ',')
	case "csv-to-json5":
		table, err := csv.Parse(backing, in, ',', true)
		if err != nil {
			return fmt.Errorf("convert: parse csv: %w", err)
		}
		root, err := tableToRows(backing, table)
		if err != nil {
			return fmt.Errorf("convert: reshape table to rows: %w", err)
		}
		out = json5.WriteString(root)
	default:
		return fmt.Errorf("convert: unknown direction %q (want json5-to-csv or csv-to-json5)", direction)
	}

	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("convert: write %s: %w", outPath, err)
	}
	return nil
}

// rowsToTable reshapes a container of flat OBJECTs (each child of rows is one
// row; json5.Parse yields an OBJECT root, so the rows are its entries) into a
// CSV-shaped ARRAY-of-named-column tree, taking column order/names from the
// first row.
func rowsToTable(backing allocator.Allocator, rows *adt.Node) (*adt.Node, error) {
	table, err := adt.MakeBranch(backing, "", true)
	if err != nil {
		return nil, err
	}

	children := rows.Children()
	if len(children) == 0 {
		return table, nil
	}
	first := children[0]

	columns := make([]*adt.Node, 0, first.Len())
	for _, field := range first.Children() {
		col := adt.Alloc(table)
		if err := col.InitBranch(backing, field.Name(), true); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	for _, row := range children {
		fields := row.Children()
		for i, col := range columns {
			if i >= len(fields) {
				continue
			}
			copyScalar(adt.Alloc(col), fields[i])
		}
	}
	return table, nil
}

// tableToRows reshapes a CSV-shaped ARRAY-of-named-column tree back into a
// JSON5 ARRAY-of-flat-OBJECT tree, one row per column-index.
func tableToRows(backing allocator.Allocator, table *adt.Node) (*adt.Node, error) {
	rows, err := adt.MakeBranch(backing, "", true)
	if err != nil {
		return nil, err
	}

	columns := table.Children()
	if len(columns) == 0 {
		return rows, nil
	}
	rowCount := columns[0].Len()

	for r := 0; r < rowCount; r++ {
		row := adt.Alloc(rows)
		if err := row.InitBranch(backing, "", false); err != nil {
			return nil, err
		}
		for _, col := range columns {
			values := col.Children()
			if r >= len(values) {
				continue
			}
			field := adt.Alloc(row)
			field.SetName(col.Name())
			copyScalar(field, values[r])
		}
	}
	return rows, nil
}

// copyScalar copies src's scalar value (string/integer/real) onto dst.
func copyScalar(dst, src *adt.Node) {
	switch src.Kind {
	case adt.KindInteger:
		dst.SetInteger(src.Integer())
	case adt.KindReal:
		dst.SetReal(src.Real())
	default:
		dst.SetString(src.String(), src.Kind == adt.KindMultistring)
	}
}

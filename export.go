// Copyright 2025 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package tco

import (
	"fmt"
	"math"
	"strings"
)

// Number formats of the exported columns.
const (
	NumberFormat  = "#,##0"
	PercentFormat = `#,##0.0"%"`
	// FormattedWidth is the width of the number and percent columns.
	FormattedWidth = 15
)

// Source is a table with the highlight category of its sheet.
type Source struct {
	Table    *Table
	Category Category
}

// Export writes the selected sources into w, one sheet each, in the order of selected.
// It does not Close w.
//
// Names differing only in case are duplicates.
//
// An empty selection writes nothing.
func Export(w Writer, selected []string, sources map[string]Source) error {
	seen := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		// sheet names are case-insensitive in the workbooks
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%q: %w", name, ErrDuplicateSheet)
		}
		seen[key] = struct{}{}
		if _, ok := sources[name]; !ok {
			return fmt.Errorf("%q: %w", name, ErrUnknownSheet)
		}
	}
	for _, name := range selected {
		if err := exportSheet(w, name, sources[name]); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// ColumnFormat returns the number format of the field:
// PercentFormat if the name contains '%', NumberFormat for numbers.
func ColumnFormat(f Field) string {
	if strings.Contains(f.Name, "%") {
		return PercentFormat
	}
	if f.Kind == KindNumber {
		return NumberFormat
	}
	return ""
}

// Columns returns the sheet columns of the table, with bold headers.
func Columns(t *Table) []Column {
	cols := make([]Column, len(t.Fields))
	for i, f := range t.Fields {
		cols[i].Name = f.Name
		cols[i].Header.FontBold = true
		if format := ColumnFormat(f); format != "" {
			cols[i].Column.Format = format
			cols[i].Width = FormattedWidth
		}
	}
	return cols
}

func exportSheet(w Writer, name string, src Source) error {
	t := src.Table
	if t == nil {
		return fmt.Errorf("nil table: %w", ErrUnknownSheet)
	}
	var candidates []string
	if src.Category == VendorRank {
		for _, c := range []string{FirstVendorColumn, SecondVendorColumn} {
			if t.Index(c) < 0 {
				return fmt.Errorf("%q: %w", c, ErrMissingColumn)
			}
		}
		candidates = t.NumericNames()
	}
	cols := Columns(t)
	sheet, err := w.NewSheet(name, cols)
	if err != nil {
		return err
	}
	values := make([]any, len(cols))
	for r, row := range t.Rows {
		tags := t.rowTags(r, src.Category, candidates)
		for i, v := range row {
			v = Sanitize(v)
			if tags[i] == TagNone {
				values[i] = v
				continue
			}
			format := cols[i].Column.Format
			if format == "" {
				format = NumberFormat
			}
			values[i] = Styled{Value: v, Style: TagStyle(tags[i], format)}
		}
		if err := sheet.AppendRow(values...); err != nil {
			sheet.Close()
			return err
		}
	}
	return sheet.Close()
}

// Sanitize returns nil for missing values, NaN and infinities, v otherwise.
func Sanitize(v any) any {
	if isMissing(v) {
		return nil
	}
	switch x := v.(type) {
	case float64:
		if math.IsInf(x, 0) {
			return nil
		}
	case float32:
		if math.IsInf(float64(x), 0) {
			return nil
		}
	}
	return v
}

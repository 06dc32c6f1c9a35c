// Copyright 2025 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package tco

import (
	"fmt"
	"strings"
)

// Kind is the role of a column.
type Kind uint8

const (
	// KindAuto is detected from the values by NewTable.
	KindAuto Kind = iota
	KindText
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "auto"
	}
}

// Field is a named column of a Table.
type Field struct {
	Name string
	Kind Kind
}

// Table is an ordered list of fields and rows.
// Every row has exactly one value per field.
type Table struct {
	Fields []Field
	Rows   [][]any
	index  map[string]int
}

// NewTable returns a table of the rows, detecting the Kind of the KindAuto fields.
//
// A field is a number if it has a numeric value and all its non-missing values are numeric.
func NewTable(fields []Field, rows [][]any) (*Table, error) {
	t := Table{Fields: append([]Field(nil), fields...), Rows: rows,
		index: make(map[string]int, len(fields))}
	for i, f := range t.Fields {
		if _, ok := t.index[f.Name]; !ok {
			t.index[f.Name] = i
		}
	}
	for i, row := range rows {
		if len(row) != len(fields) {
			return nil, fmt.Errorf("row %d: %d values for %d columns: %w", i+1, len(row), len(fields), ErrRowWidth)
		}
	}
	for j, f := range t.Fields {
		if f.Kind != KindAuto {
			continue
		}
		var numbers int
		kind := KindNumber
		for _, row := range rows {
			v := row[j]
			if isMissing(v) {
				continue
			}
			if !isNumeric(v) {
				kind = KindText
				break
			}
			numbers++
		}
		if numbers == 0 {
			kind = KindText
		}
		t.Fields[j].Kind = kind
	}
	return &t, nil
}

// MustTable is like NewTable, but panics on error.
func MustTable(names []string, rows ...[]any) *Table {
	fields := make([]Field, len(names))
	for i, nm := range names {
		fields[i].Name = nm
	}
	t, err := NewTable(fields, rows)
	if err != nil {
		panic(err)
	}
	return t
}

// Names returns the field names.
func (t *Table) Names() []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}

// NumericNames returns the names of the number fields.
func (t *Table) NumericNames() []string {
	var names []string
	for _, f := range t.Fields {
		if f.Kind == KindNumber {
			names = append(names, f.Name)
		}
	}
	return names
}

// Index returns the index of the named field, or -1.
func (t *Table) Index(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

// Category selects the highlight rules of a sheet.
type Category uint8

const (
	Plain Category = iota
	// TotalRows highlights the rows labeled TOTAL.
	TotalRows
	// VendorRank highlights the cells of the 1st and 2nd lowest vendors.
	VendorRank
)

func (c Category) String() string {
	switch c {
	case TotalRows:
		return "total"
	case VendorRank:
		return "vendor"
	default:
		return "plain"
	}
}

// ParseCategory parses the String form of a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain", "none":
		return Plain, nil
	case "total", "totals", "total-rows":
		return TotalRows, nil
	case "vendor", "vendors", "vendor-rank":
		return VendorRank, nil
	}
	return Plain, fmt.Errorf("unknown category %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	var err error
	*c, err = ParseCategory(string(b))
	return err
}

// VendorTags returns the vendor tags of the row, considering only the
// candidates as vendor columns.
// A missing designator column yields TagNone everywhere.
func (t *Table) VendorTags(row int, candidates []string) []Tag {
	tags := make([]Tag, len(t.Fields))
	fi, si := t.Index(FirstVendorColumn), t.Index(SecondVendorColumn)
	if fi < 0 || si < 0 {
		return tags
	}
	values := t.Rows[row]
	candTags := ClassifyVendorRow(values[fi], values[si], candidates)
	for k, tag := range candTags {
		if tag == TagNone {
			continue
		}
		if i := t.Index(candidates[k]); i >= 0 {
			tags[i] = tag
		}
	}
	return tags
}

// RowTags returns the tag of each cell of the row under the category's rules.
// Vendor candidates are all the columns of the table.
func (t *Table) RowTags(row int, cat Category) []Tag {
	return t.rowTags(row, cat, t.Names())
}

func (t *Table) rowTags(row int, cat Category, candidates []string) []Tag {
	switch cat {
	case TotalRows:
		tags := make([]Tag, len(t.Fields))
		if IsTotalRow(t.Rows[row]) {
			for i := range tags {
				tags[i] = TagTotalRow
			}
		}
		return tags
	case VendorRank:
		return t.VendorTags(row, candidates)
	}
	return make([]Tag, len(t.Fields))
}

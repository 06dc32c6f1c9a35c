// Copyright 2025 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package view renders tables as HTML grids, highlighted the same way as
// the exported workbooks.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/UNO-SOFT/tco"
)

// Grid is a table prepared for display.
type Grid struct {
	Name    string
	Headers []string
	Rows    [][]Cell
}

// Cell is a displayed cell.
type Cell struct {
	Text    string
	Style   string
	Tag     tco.Tag
	Numeric bool
}

// NewGrid prepares the table of src for display.
//
// Number columns are formatted with tco.FormatValue.
// Vendor-rank rows consider every column as a vendor candidate.
func NewGrid(name string, src tco.Source) *Grid {
	t := src.Table
	g := Grid{Name: name, Headers: t.Names(), Rows: make([][]Cell, len(t.Rows))}
	for r, row := range t.Rows {
		tags := t.RowTags(r, src.Category)
		cells := make([]Cell, len(row))
		for i, v := range row {
			c := Cell{Tag: tags[i], Numeric: t.Fields[i].Kind == tco.KindNumber}
			if c.Numeric {
				c.Text = tco.FormatValue(v)
			} else {
				c.Text = tco.Text(v)
			}
			if c.Tag != tco.TagNone {
				c.Style = CSS(tco.TagStyle(c.Tag, ""))
			}
			cells[i] = c
		}
		g.Rows[r] = cells
	}
	return &g
}

// CSS returns the inline CSS of the style,
// such as "font-weight: bold; background-color: #D9EAD3; color: #1A5E20;".
func CSS(st tco.Style) string {
	var parts []string
	if st.FontBold {
		parts = append(parts, "font-weight: bold;")
	}
	if st.Background != "" {
		parts = append(parts, "background-color: #"+st.Background+";")
	}
	if st.FontColor != "" {
		parts = append(parts, "color: #"+st.FontColor+";")
	}
	return strings.Join(parts, " ")
}

// WritePage writes a HTML page with the grids of the selected sources.
// An empty selection writes nothing.
func WritePage(w io.Writer, title string, selected []string, sources map[string]tco.Source) error {
	if len(selected) == 0 {
		return nil
	}
	grids := make([]*Grid, 0, len(selected))
	for _, name := range selected {
		src, ok := sources[name]
		if !ok || src.Table == nil {
			return fmt.Errorf("%q: %w", name, tco.ErrUnknownSheet)
		}
		grids = append(grids, NewGrid(name, src))
	}
	_, err := io.WriteString(w, PageHTML(title, grids))
	return err
}

// Copyright 2025 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package tco

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recWriter struct {
	sheets []*recSheet
}

type recSheet struct {
	name   string
	cols   []Column
	rows   [][]any
	closed bool
}

func (w *recWriter) Close() error { return nil }
func (w *recWriter) NewSheet(name string, cols []Column) (Sheet, error) {
	s := &recSheet{name: name, cols: cols}
	w.sheets = append(w.sheets, s)
	return s, nil
}
func (s *recSheet) Close() error { s.closed = true; return nil }
func (s *recSheet) AppendRow(values ...any) error {
	s.rows = append(s.rows, append([]any(nil), values...))
	return nil
}

func TestExportEmptySelection(t *testing.T) {
	var w recWriter
	require.NoError(t, Export(&w, nil, DemoSources(false)))
	assert.Empty(t, w.sheets)
}

func TestExportMergeData(t *testing.T) {
	merge := MustTable([]string{"VENDOR", "SCOPE TOTAL PRICE (IDR)", "REGION 1", "REGION 2", "REGION 3", "TOTAL"},
		[]any{"Vendor A", "MBTS", 800, 250, 300, 1350},
		[]any{"Vendor A", "Reposition", 750, 250, 260, 1260},
		[]any{"Vendor A", "TOTAL", 1550, 500, 560, 2610},
	)
	var w recWriter
	require.NoError(t, Export(&w, []string{MergeData},
		map[string]Source{MergeData: {Table: merge, Category: TotalRows}}))
	require.Len(t, w.sheets, 1)
	s := w.sheets[0]
	assert.Equal(t, MergeData, s.name)
	assert.True(t, s.closed)

	require.Len(t, s.cols, 6)
	for _, c := range s.cols {
		assert.Equal(t, Style{FontBold: true}, c.Header, c.Name)
	}
	assert.Equal(t, "", s.cols[0].Column.Format)
	assert.Zero(t, s.cols[0].Width)
	for _, c := range s.cols[2:] {
		assert.Equal(t, NumberFormat, c.Column.Format, c.Name)
		assert.Equal(t, float64(FormattedWidth), c.Width, c.Name)
	}

	require.Len(t, s.rows, 3)
	for _, row := range s.rows[:2] {
		for _, v := range row {
			_, styled := v.(Styled)
			assert.False(t, styled, "%v", row)
		}
	}
	for i, v := range s.rows[2] {
		sv, ok := v.(Styled)
		require.True(t, ok, "%d: %#v", i, v)
		assert.True(t, sv.Style.FontBold)
		assert.Equal(t, "D9EAD3", sv.Style.Background)
		assert.Equal(t, NumberFormat, sv.Style.Format)
	}
	assert.Equal(t, "TOTAL", s.rows[2][1].(Styled).Value)
	assert.Equal(t, 2610, s.rows[2][5].(Styled).Value)
}

func TestExportVendorRank(t *testing.T) {
	var w recWriter
	sources := DemoSources(false)
	require.NoError(t, Export(&w, []string{BidPriceAnalysis}, sources))
	s := w.sheets[0]
	tbl := sources[BidPriceAnalysis].Table

	byName := make(map[string]Column, len(s.cols))
	for _, c := range s.cols {
		byName[c.Name] = c
	}
	assert.Equal(t, PercentFormat, byName["Gap 1 to 2 (%)"].Column.Format)
	assert.Equal(t, NumberFormat, byName["Median Price"].Column.Format)
	assert.Equal(t, "", byName[FirstVendorColumn].Column.Format)

	// REGION 1 / MBTS: VENDOR A is the 1st, VENDOR C is the 2nd
	row := s.rows[0]
	first := row[tbl.Index("VENDOR A")].(Styled)
	assert.Equal(t, "C6EFCE", first.Style.Background)
	assert.Equal(t, NumberFormat, first.Style.Format)
	assert.Equal(t, 800, first.Value)
	second := row[tbl.Index("VENDOR C")].(Styled)
	assert.Equal(t, "FFEB9C", second.Style.Background)
	_, styled := row[tbl.Index("VENDOR B")].(Styled)
	assert.False(t, styled)
	// the designator columns themselves are not highlighted
	_, styled = row[tbl.Index(FirstVendorColumn)].(Styled)
	assert.False(t, styled)
}

func TestExportSanitize(t *testing.T) {
	tbl := MustTable([]string{"Scope", "Price"},
		[]any{"MBTS", math.Inf(1)},
		[]any{"TOTAL", math.NaN()},
	)
	var w recWriter
	require.NoError(t, Export(&w, []string{"s"}, map[string]Source{"s": {Table: tbl, Category: TotalRows}}))
	rows := w.sheets[0].rows
	assert.Nil(t, rows[0][1])
	sv := rows[1][1].(Styled)
	assert.Nil(t, sv.Value)
	assert.True(t, sv.Style.FontBold)
}

func TestExportErrors(t *testing.T) {
	sources := DemoSources(false)
	var w recWriter
	err := Export(&w, []string{MergeData, "Nope"}, sources)
	assert.True(t, errors.Is(err, ErrUnknownSheet), "%v", err)
	assert.Empty(t, w.sheets)

	err = Export(&w, []string{MergeData, MergeData}, sources)
	assert.True(t, errors.Is(err, ErrDuplicateSheet), "%v", err)

	// workbooks do not tell sheet names apart by case
	sources["MERGE DATA"] = sources[TCOSummary]
	err = Export(&w, []string{MergeData, "MERGE DATA"}, sources)
	assert.True(t, errors.Is(err, ErrDuplicateSheet), "%v", err)
	assert.Empty(t, w.sheets)

	// a TOTAL-style table declared as vendor-rank
	sources["wrong"] = Source{Table: sources[MergeData].Table, Category: VendorRank}
	err = Export(&w, []string{"wrong"}, sources)
	assert.True(t, errors.Is(err, ErrMissingColumn), "%v", err)
}

func TestDemoSources(t *testing.T) {
	for _, transposed := range []bool{false, true} {
		sources := DemoSources(transposed)
		names := DemoSheets(transposed)
		require.Len(t, sources, len(names))
		for _, nm := range names {
			src, ok := sources[nm]
			require.True(t, ok, nm)
			assert.NotEmpty(t, src.Table.Rows, nm)
			assert.LessOrEqual(t, len(nm), 31, nm)
		}
		assert.Equal(t, VendorRank, sources[names[2]].Category)
	}
	assert.Equal(t, "super botton - original.xlsx", DemoFileName(false))
}

func TestColumnFormat(t *testing.T) {
	tbl := MustTable([]string{"Scope", "Price", "Gap (%)", "Share %"},
		[]any{"MBTS", 800, 12, "12.5%"},
		[]any{"TOTAL", 1550, 7, "6.7%"},
	)
	require.Equal(t, KindNumber, tbl.Fields[2].Kind)
	cols := Columns(tbl)
	formats := make([]string, len(cols))
	for i, c := range cols {
		formats[i] = c.Column.Format
	}
	// the percent format wins over the number format
	assert.Equal(t, []string{"", NumberFormat, PercentFormat, PercentFormat}, formats)

	var w recWriter
	require.NoError(t, Export(&w, []string{"s"}, map[string]Source{"s": {Table: tbl, Category: TotalRows}}))
	sv := w.sheets[0].rows[1][2].(Styled)
	assert.Equal(t, PercentFormat, sv.Style.Format)
	assert.Equal(t, 7, sv.Value)
}

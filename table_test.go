// Copyright 2025 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package tco

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableKinds(t *testing.T) {
	tbl, err := NewTable(
		[]Field{{Name: "Scope"}, {Name: "Price"}, {Name: "Gap %"}, {Name: "Empty"}, {Name: "Declared", Kind: KindNumber}},
		[][]any{
			{"MBTS", 800, "12.5%", nil, nil},
			{"Reroute", nil, "6.7%", nil, nil},
			{"TOTAL", 1550.5, "", nil, nil},
		})
	require.NoError(t, err)
	kinds := make([]Kind, len(tbl.Fields))
	for i, f := range tbl.Fields {
		kinds[i] = f.Kind
	}
	assert.Equal(t, []Kind{KindText, KindNumber, KindText, KindText, KindNumber}, kinds)
	assert.Equal(t, []string{"Price", "Declared"}, tbl.NumericNames())
	assert.Equal(t, 1, tbl.Index("Price"))
	assert.Equal(t, -1, tbl.Index("nope"))
}

func TestNewTableRowWidth(t *testing.T) {
	_, err := NewTable([]Field{{Name: "a"}, {Name: "b"}}, [][]any{{1, 2}, {3}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRowWidth))
}

func TestRowTags(t *testing.T) {
	tbl := MustTable([]string{"VENDOR", "SCOPE", "REGION 1", "TOTAL"},
		[]any{"Vendor A", "MBTS", 800, 1350},
		[]any{"Vendor A", "TOTAL", 1550, 2610},
	)
	assert.Equal(t, []Tag{0, 0, 0, 0}, tbl.RowTags(0, TotalRows))
	assert.Equal(t, []Tag{TagTotalRow, TagTotalRow, TagTotalRow, TagTotalRow}, tbl.RowTags(1, TotalRows))
	assert.Equal(t, []Tag{0, 0, 0, 0}, tbl.RowTags(1, Plain))
	// no designator columns
	assert.Equal(t, []Tag{0, 0, 0, 0}, tbl.RowTags(1, VendorRank))
}

func TestVendorTags(t *testing.T) {
	tbl := MustTable([]string{"REGION", "VENDOR A", "VENDOR B", "VENDOR C", FirstVendorColumn, SecondVendorColumn},
		[]any{"REGION 1", 800, 1250, 900, "VENDOR A", "VENDOR C"},
		[]any{"REGION 2", 250, 200, 320, "VENDOR B", "VENDOR X"},
	)
	assert.Equal(t,
		[]Tag{TagNone, TagFirstVendor, TagNone, TagSecondVendor, TagNone, TagNone},
		tbl.VendorTags(0, tbl.NumericNames()))
	assert.Equal(t,
		[]Tag{TagNone, TagNone, TagFirstVendor, TagNone, TagNone, TagNone},
		tbl.VendorTags(1, tbl.NumericNames()))
	// the designator must name a candidate
	assert.Equal(t,
		[]Tag{TagNone, TagNone, TagNone, TagNone, TagNone, TagNone},
		tbl.VendorTags(0, []string{"REGION"}))
}

func TestParseCategory(t *testing.T) {
	for s, want := range map[string]Category{
		"": Plain, "plain": Plain, "TOTAL": TotalRows, "total-rows": TotalRows,
		"vendor": VendorRank, " Vendor-Rank ": VendorRank,
	} {
		got, err := ParseCategory(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := ParseCategory("bogus")
	assert.Error(t, err)

	var c Category
	require.NoError(t, c.UnmarshalText([]byte(c.String())))
	assert.Equal(t, Plain, c)
	require.NoError(t, c.UnmarshalText([]byte(VendorRank.String())))
	assert.Equal(t, VendorRank, c)
}

func TestReadTable(t *testing.T) {
	const data = "VENDOR;SCOPE TOTAL PRICE (IDR);REGION 1;Gap 1 to 2 (%)\n" +
		"Vendor A;MBTS;800;12.5%\n" +
		"Vendor A;Reroute;;6.7%\n" +
		"Vendor A;TOTAL;1940.5;\n"
	cr, err := NewCsvReader(strings.NewReader(data), "utf-8")
	require.NoError(t, err)
	tbl, err := ReadTable(cr)
	require.NoError(t, err)
	assert.Equal(t, []string{"VENDOR", "SCOPE TOTAL PRICE (IDR)", "REGION 1", "Gap 1 to 2 (%)"}, tbl.Names())
	assert.Equal(t, []string{"REGION 1"}, tbl.NumericNames())
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, []any{"Vendor A", "MBTS", 800.0, "12.5%"}, tbl.Rows[0])
	assert.Equal(t, []any{"Vendor A", "Reroute", nil, "6.7%"}, tbl.Rows[1])
	assert.Equal(t, []any{"Vendor A", "TOTAL", 1940.5, nil}, tbl.Rows[2])
	assert.True(t, IsTotalRow(tbl.Rows[2]))
}

func TestReadTableCharset(t *testing.T) {
	// "Régió" in ISO-8859-2
	data := "R\xe9gi\xf3,VENDOR A\nREGION 1,2690\n"
	cr, err := NewCsvReader(strings.NewReader(data), "iso-8859-2")
	require.NoError(t, err)
	tbl, err := ReadTable(cr)
	require.NoError(t, err)
	assert.Equal(t, []string{"Régió", "VENDOR A"}, tbl.Names())
	assert.Equal(t, []any{"REGION 1", 2690.0}, tbl.Rows[0])
}

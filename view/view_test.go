// Copyright 2025 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"errors"
	"strings"
	"testing"

	"github.com/UNO-SOFT/tco"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const totalCSS = "font-weight: bold; background-color: #D9EAD3; color: #1A5E20;"

func TestCSS(t *testing.T) {
	assert.Equal(t, totalCSS, CSS(tco.TagStyle(tco.TagTotalRow, "")))
	assert.Equal(t, "background-color: #C6EFCE; color: #006100;", CSS(tco.TagStyle(tco.TagFirstVendor, "")))
	assert.Equal(t, "", CSS(tco.Style{}))
}

func TestNewGridTotals(t *testing.T) {
	sources := tco.DemoSources(false)
	g := NewGrid(tco.MergeData, sources[tco.MergeData])
	assert.Equal(t, sources[tco.MergeData].Table.Names(), g.Headers)
	require.Len(t, g.Rows, 12)

	mbts := g.Rows[0]
	assert.Equal(t, "800", mbts[2].Text)
	assert.Equal(t, "1.350", mbts[5].Text)
	assert.True(t, mbts[2].Numeric)
	assert.False(t, mbts[1].Numeric)
	for r, row := range g.Rows {
		isTotal := row[1].Text == "TOTAL"
		for i, c := range row {
			if isTotal {
				assert.Equal(t, tco.TagTotalRow, c.Tag, "%d/%d", r, i)
				assert.Equal(t, totalCSS, c.Style)
			} else {
				assert.Equal(t, tco.TagNone, c.Tag, "%d/%d", r, i)
				assert.Empty(t, c.Style)
			}
		}
	}
	assert.Equal(t, "2.690", g.Rows[3][2].Text)
}

func TestNewGridVendors(t *testing.T) {
	src := tco.DemoSources(false)[tco.BidPriceAnalysis]
	g := NewGrid(tco.BidPriceAnalysis, src)
	idx := src.Table.Index
	for r, row := range g.Rows {
		first := src.Table.Rows[r][idx(tco.FirstVendorColumn)].(string)
		second := src.Table.Rows[r][idx(tco.SecondVendorColumn)].(string)
		for i, c := range row {
			switch g.Headers[i] {
			case first:
				assert.Equal(t, tco.TagFirstVendor, c.Tag, "%d/%s", r, g.Headers[i])
			case second:
				assert.Equal(t, tco.TagSecondVendor, c.Tag, "%d/%s", r, g.Headers[i])
			default:
				assert.Equal(t, tco.TagNone, c.Tag, "%d/%s", r, g.Headers[i])
			}
		}
	}
	assert.Equal(t, "12.5%", g.Rows[0][idx("Gap 1 to 2 (%)")].Text)
}

func TestWritePage(t *testing.T) {
	sources := tco.DemoSources(false)
	var buf strings.Builder
	require.NoError(t, WritePage(&buf, "TCO <demo>", []string{tco.MergeData, tco.BidPriceAnalysis}, sources))
	page := buf.String()
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>TCO &lt;demo&gt;</title>")
	assert.Contains(t, page, "<h2>Bid &amp; Price Analysis</h2>")
	assert.Contains(t, page, `<td class="num">800</td>`)
	assert.Contains(t, page, `<td class="num" style="`+totalCSS+`">4.520</td>`)
	assert.NotContains(t, page, tco.TCOSummary)

	buf.Reset()
	require.NoError(t, WritePage(&buf, "empty", nil, sources))
	assert.Empty(t, buf.String())

	err := WritePage(&buf, "x", []string{"Nope"}, sources)
	assert.True(t, errors.Is(err, tco.ErrUnknownSheet))

	err = WritePage(failWriter{}, "x", []string{tco.MergeData}, sources)
	assert.True(t, errors.Is(err, errClosed), "%v", err)
}

var errClosed = errors.New("closed")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errClosed }

// Copyright 2025 Tamás Gulácsi. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/UNO-SOFT/tco"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArg(t *testing.T) {
	for _, tc := range []struct {
		Arg, Name, File string
		Category        tco.Category
		Err             bool
	}{
		{Arg: "prices.csv", Name: "prices", File: "prices.csv"},
		{Arg: "Merge Data:merge.csv", Name: "Merge Data", File: "merge.csv"},
		{Arg: "Bid:/tmp/bid.csv:vendor", Name: "Bid", File: "/tmp/bid.csv", Category: tco.VendorRank},
		{Arg: ":dir/summary.csv:total", Name: "summary", File: "dir/summary.csv", Category: tco.TotalRows},
		{Arg: "-", Name: "Sheet1", File: "-"},
		{Arg: "a:b.csv:bogus", Err: true},
		{Arg: "a:b:c:d", Err: true},
	} {
		name, fn, cat, err := parseArg(tc.Arg)
		if tc.Err {
			assert.Error(t, err, tc.Arg)
			continue
		}
		require.NoError(t, err, tc.Arg)
		assert.Equal(t, tc.Name, name, tc.Arg)
		assert.Equal(t, tc.File, fn, tc.Arg)
		assert.Equal(t, tc.Category, cat, tc.Arg)
	}
}

func writeFile(t *testing.T, fn, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "tco.yaml")
	writeFile(t, fn, `sheets:
  - name: Merge Data
    file: merge.csv
    category: total
  - file: /abs/bid.csv
    category: vendor
    charset: iso-8859-2
`)
	m, err := ReadManifest(fn)
	require.NoError(t, err)
	require.Len(t, m.Sheets, 2)
	assert.Equal(t, ManifestSheet{Name: "Merge Data", File: filepath.Join(dir, "merge.csv"), Category: tco.TotalRows}, m.Sheets[0])
	assert.Equal(t, ManifestSheet{Name: "bid", File: "/abs/bid.csv", Category: tco.VendorRank, Charset: "iso-8859-2"}, m.Sheets[1])

	writeFile(t, fn, "sheets:\n  - name: x\n")
	_, err = ReadManifest(fn)
	assert.Error(t, err)

	writeFile(t, fn, "sheets:\n  - file: a.csv\n    category: nope\n")
	_, err = ReadManifest(fn)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	sf := sourceFlags{Demo: "transposed", Sheets: " Merge Transposed ,, TCO Summary Transposed"}
	in, err := sf.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, tco.DemoSheets(true), in.Order)
	assert.Equal(t, []string{tco.MergeTransposed, tco.SummaryTransposed}, in.Selected)
	assert.Equal(t, tco.DemoFileName(true), in.DefaultOut)

	_, err = (&sourceFlags{Demo: "other"}).Load(nil)
	assert.Error(t, err)

	dir := t.TempDir()
	csvFn := filepath.Join(dir, "summary.csv")
	writeFile(t, csvFn, "SCOPE;VENDOR A;VENDOR B\nMBTS;1350;2100\nTOTAL;4520;4530\n")
	writeFile(t, filepath.Join(dir, "m.yaml"), "sheets:\n  - name: From Manifest\n    file: summary.csv\n    category: total\n")

	sf = sourceFlags{Manifest: filepath.Join(dir, "m.yaml"), Charset: "utf-8"}
	in, err = sf.Load([]string{"Second:" + csvFn + ":total"})
	require.NoError(t, err)
	assert.Equal(t, []string{"From Manifest", "Second"}, in.Selected)
	assert.Equal(t, tco.TotalRows, in.Sources["Second"].Category)
	assert.Equal(t, []string{"VENDOR A", "VENDOR B"}, in.Sources["Second"].Table.NumericNames())
	assert.Equal(t, sf.Manifest, in.DefaultOut)

	_, err = sf.Load([]string{"From Manifest:" + csvFn})
	assert.True(t, errors.Is(err, tco.ErrDuplicateSheet), "%v", err)
}

func TestWriteOut(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.bin")
	require.NoError(t, writeOut(fn, bytes.NewReader([]byte("abc"))))
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(b))
}

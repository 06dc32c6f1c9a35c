// Copyright 2020, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package tco

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var EncName = "utf-8"

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
	}
	if EncName == "" {
		EncName = "utf-8"
	}
}

func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

type csvReadCloser struct {
	*csv.Reader
	io.Closer
}

// OpenCsv opens the named file ("" or "-" is stdin) as CSV,
// decoding it from encName and sniffing the separator.
func OpenCsv(fn, encName string) (csvReadCloser, error) {
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return csvReadCloser{}, err
		}
	}
	cr, err := NewCsvReader(fh, encName)
	if err != nil {
		fh.Close()
		return csvReadCloser{}, err
	}
	return csvReadCloser{Reader: cr, Closer: fh}, nil
}

// NewCsvReader returns a csv.Reader of r, decoding it from encName.
// The separator is the most frequent of ",;\t|" in the first line.
func NewCsvReader(r io.Reader, encName string) (*csv.Reader, error) {
	var enc encoding.Encoding
	if encName != "" {
		var err error
		if enc, err = GetEncoding(encName); err != nil {
			return nil, err
		}
	}
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
	}
	br := bufio.NewReaderSize(r, 1<<20)
	b, err := br.Peek(1024)
	if err != nil && len(b) == 0 {
		return nil, err
	}
	sep := sniffSeparator(b)

	cr := csv.NewReader(br)
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	return cr, nil
}

func sniffSeparator(b []byte) rune {
	line := string(b)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	sep, most := ',', 0
	for _, r := range ",;\t|" {
		if n := strings.Count(line, string(r)); n > most {
			sep, most = r, n
		}
	}
	return sep
}

// ReadTable reads the header and the records of cr into a Table, see TableOf.
func ReadTable(cr *csv.Reader) (*Table, error) {
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	header = append([]string(nil), header...)
	var records [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if len(rec) != len(header) {
			return nil, fmt.Errorf("line %d: %d fields for %d columns: %w", len(records)+2, len(rec), len(header), ErrRowWidth)
		}
		records = append(records, append([]string(nil), rec...))
	}

	return TableOf(header, records)
}

// TableOf returns a Table of the header and the text records.
//
// Empty cells are missing values. A column where all non-empty cells
// parse as numbers becomes a KindNumber column of float64 values.
// Short records are padded with missing values, long ones are cut.
func TableOf(header []string, records [][]string) (*Table, error) {
	fields := make([]Field, len(header))
	numeric := make([]bool, len(header))
	for j, nm := range header {
		fields[j].Name = nm
		var numbers int
		numeric[j] = true
		for _, rec := range records {
			if j >= len(rec) {
				continue
			}
			s := strings.TrimSpace(rec[j])
			if s == "" {
				continue
			}
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				numeric[j] = false
				break
			}
			numbers++
		}
		numeric[j] = numeric[j] && numbers != 0
		if numeric[j] {
			fields[j].Kind = KindNumber
		} else {
			fields[j].Kind = KindText
		}
	}

	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(header))
		for j, s := range rec {
			if j >= len(header) {
				break
			}
			if strings.TrimSpace(s) == "" {
				continue
			}
			if numeric[j] {
				row[j], _ = strconv.ParseFloat(strings.TrimSpace(s), 64)
			} else {
				row[j] = s
			}
		}
		rows[i] = row
	}
	return NewTable(fields, rows)
}

// ReadCsvTable reads the named CSV file into a Table.
func ReadCsvTable(fn, encName string) (*Table, error) {
	cr, err := OpenCsv(fn, encName)
	if err != nil {
		return nil, err
	}
	defer cr.Close()
	t, err := ReadTable(cr.Reader)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", fn, err)
	}
	return t, nil
}

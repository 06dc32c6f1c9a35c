// Copyright 2025 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package ods writes OpenDocument spreadsheets.
package ods

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/UNO-SOFT/tco"
	"github.com/klauspost/compress/zip"
)

// MIMEType of the written files.
const MIMEType = "application/vnd.oasis.opendocument.spreadsheet"

// MaxRowCount is the number of maximum rows.
const MaxRowCount = 1_048_576

var _ = (tco.Writer)((*ODSWriter)(nil))

// ODSWriter collects the sheets in memory and writes the zip container on Close.
//
// This writer allows concurrent writes to separate sheets.
type ODSWriter struct {
	w       io.Writer
	doc     document
	sheets  []*ODSSheet
	styles  map[tco.Style]string
	numbers map[string]string
	mu      sync.Mutex
}

type ODSSheet struct {
	ow      *ODSWriter
	Name    string
	columns []column
	buf     bytes.Buffer
	cells   []cell
	row     int64
	mu      sync.Mutex
}

// NewWriter returns a new tco.Writer writing to w.
func NewWriter(w io.Writer) (*ODSWriter, error) {
	if w == nil {
		return nil, fmt.Errorf("nil writer")
	}
	return &ODSWriter{w: w}, nil
}

func (ow *ODSWriter) NewSheet(name string, columns []tco.Column) (tco.Sheet, error) {
	ow.mu.Lock()
	defer ow.mu.Unlock()
	if ow.w == nil {
		return nil, fmt.Errorf("%s: writer is closed", name)
	}
	for _, s := range ow.sheets {
		if strings.EqualFold(s.Name, name) {
			return nil, fmt.Errorf("%q: %w", name, tco.ErrDuplicateSheet)
		}
	}
	sh := &ODSSheet{ow: ow, Name: name, columns: make([]column, len(columns))}
	header := make([]cell, len(columns))
	var hasHeader bool
	for i, c := range columns {
		if c.Width > 0 {
			sh.columns[i].Style = ow.columnStyle(c.Width)
		}
		sh.columns[i].CellStyle = ow.getStyle(c.Column)
		if c.Name != "" {
			hasHeader = true
		}
		header[i] = cell{Type: "string", Text: c.Name, Style: ow.getStyle(c.Header)}
		if header[i].Style == "" && sh.columns[i].CellStyle != "" {
			// the header does not take the column's format
			header[i].Style = ow.plainStyle()
		}
	}
	if hasHeader {
		writerow(&sh.buf, header)
		sh.row++
	}
	ow.sheets = append(ow.sheets, sh)
	return sh, nil
}

// Close writes the document. It does not close the underlying io.Writer.
func (ow *ODSWriter) Close() error {
	if ow == nil {
		return nil
	}
	ow.mu.Lock()
	defer ow.mu.Unlock()
	w := ow.w
	ow.w = nil
	if w == nil {
		return nil
	}
	doc := ow.doc
	for _, s := range ow.sheets {
		s.mu.Lock()
		doc.Sheets = append(doc.Sheets, sheetData{Name: s.Name, Columns: s.columns, Rows: s.buf.Bytes()})
		s.mu.Unlock()
	}

	zw := zip.NewWriter(w)
	// mimetype must be the first, uncompressed entry
	fw, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err = io.WriteString(fw, MIMEType); err != nil {
		return err
	}
	writeString := func(s string) func(io.Writer) error {
		return func(w io.Writer) error {
			_, err := io.WriteString(w, s)
			return err
		}
	}
	for _, f := range []struct {
		Name  string
		Write func(io.Writer) error
	}{
		{"META-INF/manifest.xml", writeString(manifestXML)},
		{"styles.xml", writeString(stylesXML)},
		{"content.xml", func(w io.Writer) error {
			ew := errWriter{w: w}
			writecontent(&ew, &doc)
			return ew.err
		}},
	} {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate, Modified: time.Now()})
		if err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
		if err = f.Write(fw); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return zw.Close()
}

// errWriter keeps the first error of w, and fails every later Write with it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// getStyle returns the name of the cell style, registering it on first use.
// Must be called with ow.mu held.
func (ow *ODSWriter) getStyle(style tco.Style) string {
	if style.IsZero() {
		return ""
	}
	if nm, ok := ow.styles[style]; ok {
		return nm
	}
	cs := cellStyle{
		Name:       "ce" + strconv.Itoa(len(ow.doc.Cells)+1),
		Bold:       style.FontBold,
		Background: color(style.Background),
		FontColor:  color(style.FontColor),
	}
	if style.Format != "" {
		cs.DataStyle = ow.numberStyle(style.Format)
	}
	ow.doc.Cells = append(ow.doc.Cells, cs)
	if ow.styles == nil {
		ow.styles = make(map[tco.Style]string)
	}
	ow.styles[style] = cs.Name
	return cs.Name
}

// plainStyle is a style without any formatting, to override a column's default.
func (ow *ODSWriter) plainStyle() string {
	const name = "ce0"
	for _, c := range ow.doc.Cells {
		if c.Name == name {
			return name
		}
	}
	ow.doc.Cells = append(ow.doc.Cells, cellStyle{Name: name})
	return name
}

func (ow *ODSWriter) numberStyle(format string) string {
	if nm, ok := ow.numbers[format]; ok {
		return nm
	}
	ns := parseFormat(format)
	ns.Name = "N" + strconv.Itoa(len(ow.doc.Numbers)+100)
	ow.doc.Numbers = append(ow.doc.Numbers, ns)
	if ow.numbers == nil {
		ow.numbers = make(map[string]string)
	}
	ow.numbers[format] = ns.Name
	return ns.Name
}

func (ow *ODSWriter) columnStyle(width float64) string {
	// a character is about 0.19cm wide in the default font
	w := strconv.FormatFloat(width*0.19, 'f', 3, 64) + "cm"
	for _, c := range ow.doc.Columns {
		if c.Width == w {
			return c.Name
		}
	}
	cs := columnStyle{Name: "co" + strconv.Itoa(len(ow.doc.Columns)+1), Width: w}
	ow.doc.Columns = append(ow.doc.Columns, cs)
	return cs.Name
}

func (ow *ODSWriter) cellStyle(style tco.Style) string {
	ow.mu.Lock()
	defer ow.mu.Unlock()
	return ow.getStyle(style)
}

// parseFormat understands the `#,##0.00"suffix"` subset of number formats.
func parseFormat(format string) numberStyle {
	var ns numberStyle
	body := format
	if i := strings.IndexByte(format, '"'); i >= 0 {
		ns.Suffix = strings.ReplaceAll(format[i:], `"`, "")
		body = format[:i]
	}
	ns.Grouping = strings.Contains(body, ",")
	if i := strings.IndexByte(body, '.'); i >= 0 {
		ns.Decimals = strings.Count(body[i+1:], "0") + strings.Count(body[i+1:], "#")
	}
	return ns
}

func color(hex string) string {
	if hex == "" {
		return ""
	}
	return "#" + strings.TrimPrefix(hex, "#")
}

func (sh *ODSSheet) Close() error { return nil }

// AppendRow appends the values as the next row.
//
// Nil values leave the cell empty; a tco.Styled value also sets the cell's style.
func (sh *ODSSheet) AppendRow(values ...any) error {
	styles := make([]string, len(values))
	raw := make([]any, len(values))
	for i, v := range values {
		if sv, ok := v.(tco.Styled); ok {
			styles[i] = sh.ow.cellStyle(sv.Style)
			v = sv.Value
		}
		raw[i] = v
	}
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if sh.row >= MaxRowCount {
		return tco.ErrTooManyRows
	}
	sh.row++
	sh.cells = sh.cells[:0]
	for i, v := range raw {
		c := cell{Style: styles[i]}
		if err := c.set(v); err != nil {
			return fmt.Errorf("%s[%d/%d]: %w", sh.Name, i, sh.row, err)
		}
		sh.cells = append(sh.cells, c)
	}
	writerow(&sh.buf, sh.cells)
	return nil
}

func (c *cell) set(v any) error {
	if v == nil {
		return nil
	}
	if vr, ok := v.(driver.Valuer); ok {
		vv, err := vr.Value()
		if err != nil {
			return err
		}
		if vv == nil {
			return nil
		}
		v = vv
	}
	switch x := v.(type) {
	case string:
		c.Type, c.Text = "string", x
	case tco.Number:
		if f, ok := tco.ParseNumber(x); ok {
			c.setFloat(f)
		} else {
			c.Type, c.Text = "string", string(x)
		}
	case bool:
		c.Type, c.Value, c.Text = "boolean", strconv.FormatBool(x), strconv.FormatBool(x)
	case time.Time:
		if !x.IsZero() {
			c.Type, c.Value, c.Text = "date", x.Format("2006-01-02"), x.Format("2006-01-02")
		}
	case float64:
		c.setFloat(x)
	case float32:
		c.setFloat(float64(x))
	case int:
		c.setFloat(float64(x))
	case int8:
		c.setFloat(float64(x))
	case int16:
		c.setFloat(float64(x))
	case int32:
		c.setFloat(float64(x))
	case int64:
		c.setFloat(float64(x))
	case uint:
		c.setFloat(float64(x))
	case uint8:
		c.setFloat(float64(x))
	case uint16:
		c.setFloat(float64(x))
	case uint32:
		c.setFloat(float64(x))
	case uint64:
		c.setFloat(float64(x))
	case fmt.Stringer:
		c.Type, c.Text = "string", x.String()
	default:
		c.Type, c.Text = "string", fmt.Sprint(v)
	}
	return nil
}

func (c *cell) setFloat(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return
	}
	c.Type = "float"
	c.Value = strconv.FormatFloat(f, 'f', -1, 64)
	c.Text = c.Value
}

// ExportBytes exports the selected sources as an OpenDocument spreadsheet.
//
// The returned reader is positioned at the start.
// An empty selection returns nil, nil.
func ExportBytes(selected []string, sources map[string]tco.Source) (*bytes.Reader, error) {
	if len(selected) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if err := tco.Export(w, selected, sources); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return bytes.NewReader(buf.Bytes()), nil
}

type document struct {
	Numbers []numberStyle
	Cells   []cellStyle
	Columns []columnStyle
	Sheets  []sheetData
}

type numberStyle struct {
	Name     string
	Decimals int
	Grouping bool
	Suffix   string
}

type cellStyle struct {
	Name, DataStyle       string
	Background, FontColor string
	Bold                  bool
}

type columnStyle struct {
	Name, Width string
}

type column struct {
	Style, CellStyle string
}

type sheetData struct {
	Name    string
	Columns []column
	Rows    []byte
}

type cell struct {
	Type, Value, Text, Style string
}

const manifestXML = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:version="1.2" manifest:media-type="` + MIMEType + `"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
 <manifest:file-entry manifest:full-path="styles.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

const stylesXML = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-styles xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0" office:version="1.2">
<office:styles/>
</office:document-styles>
`

// Copyright 2020, 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/UNO-SOFT/tco"
	"github.com/xuri/excelize/v2"
)

// MIMEType of the written files.
const MIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var _ = (tco.Writer)((*XLSXWriter)(nil))

type XLSXWriter struct {
	w      io.Writer
	xl     *excelize.File
	styles map[tco.Style]int
	sheets []string
	mu     sync.Mutex
}

type XLSXSheet struct {
	xlw  *XLSXWriter
	Name string
	row  int64
	mu   sync.Mutex
}

// NewWriter returns a new tco.Writer.
//
// This writer allows concurrent writes to separate sheets.
//
// This writer collects everything in memory, so big sheets may impose problems.
func NewWriter(w io.Writer) *XLSXWriter {
	return &XLSXWriter{w: w, xl: excelize.NewFile()}
}

func (xlw *XLSXWriter) Close() error {
	if xlw == nil {
		return nil
	}
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	xl, w := xlw.xl, xlw.w
	xlw.xl, xlw.w = nil, nil
	if xl == nil || w == nil {
		return nil
	}
	_, err := xl.WriteTo(w)
	if closeErr := xl.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (xlw *XLSXWriter) NewSheet(name string, columns []tco.Column) (tco.Sheet, error) {
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	if xlw.xl == nil {
		return nil, fmt.Errorf("%s: writer is closed", name)
	}
	for _, s := range xlw.sheets {
		if strings.EqualFold(s, name) {
			return nil, fmt.Errorf("%q: %w", name, tco.ErrDuplicateSheet)
		}
	}
	if len(xlw.sheets) == 0 { // first
		if err := xlw.xl.SetSheetName(xlw.xl.GetSheetName(0), name); err != nil {
			return nil, err
		}
	} else if _, err := xlw.xl.NewSheet(name); err != nil {
		return nil, err
	}
	xlw.sheets = append(xlw.sheets, name)
	var hasHeader bool
	for i, c := range columns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if c.Width > 0 {
			if err = xlw.xl.SetColWidth(name, col, col, c.Width); err != nil {
				return nil, err
			}
		}
		if c.Name != "" {
			hasHeader = true
			if err = xlw.xl.SetCellStr(name, col+"1", c.Name); err != nil {
				return nil, err
			}
		}
		s, err := xlw.getStyle(c.Column)
		if err != nil {
			return nil, err
		}
		if s != 0 {
			if err = xlw.xl.SetColStyle(name, col, s); err != nil {
				return nil, err
			}
		}
		// the header does not take the column's format
		if h, err := xlw.getStyle(c.Header); err != nil {
			return nil, err
		} else if h != 0 || s != 0 {
			if err = xlw.xl.SetCellStyle(name, col+"1", col+"1", h); err != nil {
				return nil, err
			}
		}
	}
	xls := &XLSXSheet{xlw: xlw, Name: name}
	if hasHeader {
		xls.row++
	}
	return xls, nil
}

// getStyle returns the style ID of style, creating it on first use.
// The zero style is 0. Must be called with xlw.mu held.
func (xlw *XLSXWriter) getStyle(style tco.Style) (int, error) {
	if style.IsZero() {
		return 0, nil
	}
	if s, ok := xlw.styles[style]; ok {
		return s, nil
	}
	var st excelize.Style
	if style.FontBold || style.FontColor != "" {
		st.Font = &excelize.Font{Bold: style.FontBold, Color: style.FontColor}
	}
	if style.Background != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{style.Background}}
	}
	if style.Format != "" {
		format := style.Format
		st.CustomNumFmt = &format
	}
	s, err := xlw.xl.NewStyle(&st)
	if err != nil {
		return 0, fmt.Errorf("style %+v: %w", style, err)
	}
	if xlw.styles == nil {
		xlw.styles = make(map[tco.Style]int)
	}
	xlw.styles[style] = s
	return s, nil
}

func (xlw *XLSXWriter) cellStyle(style tco.Style) (int, error) {
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	return xlw.getStyle(style)
}

// MaxRowCount is the number of maximum rows.
const MaxRowCount = 1_048_576

func (xls *XLSXSheet) Close() error { return nil }

// AppendRow appends the values as the next row.
//
// Nil values leave the cell empty; a tco.Styled value also sets the cell's style.
func (xls *XLSXSheet) AppendRow(values ...any) error {
	xls.mu.Lock()
	defer xls.mu.Unlock()
	if xls.row >= MaxRowCount {
		return tco.ErrTooManyRows
	}
	xls.row++
	xl := xls.xlw.xl
	for i, v := range values {
		axis, err := excelize.CoordinatesToCellName(i+1, int(xls.row))
		if err != nil {
			return fmt.Errorf("%d/%d: %w", i, int(xls.row), err)
		}
		var styleID int
		if sv, ok := v.(tco.Styled); ok {
			if styleID, err = xls.xlw.cellStyle(sv.Style); err != nil {
				return fmt.Errorf("%s[%s]: %w", xls.Name, axis, err)
			}
			v = sv.Value
		}
		if err = xls.setValue(xl, axis, v); err != nil {
			return fmt.Errorf("%s[%s]: %w", xls.Name, axis, err)
		}
		if styleID != 0 {
			if err = xl.SetCellStyle(xls.Name, axis, axis, styleID); err != nil {
				return fmt.Errorf("%s[%s]: %w", xls.Name, axis, err)
			}
		}
	}
	return nil
}

func (xls *XLSXSheet) setValue(xl *excelize.File, axis string, v any) error {
	if v == nil {
		return nil
	}
	if vr, ok := v.(driver.Valuer); ok {
		if vv, err := vr.Value(); err == nil {
			if vv == nil {
				return nil
			}
			v = vv
		}
	}
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return nil
		}
		return xl.SetCellStr(xls.Name, axis, x.Format("2006-01-02"))
	case sql.NullTime:
		if !x.Valid || x.Time.IsZero() {
			return nil
		}
		return xl.SetCellStr(xls.Name, axis, x.Time.Format("2006-01-02"))
	case sql.NullFloat64:
		if !x.Valid {
			return nil
		}
		return xl.SetCellFloat(xls.Name, axis, x.Float64, -1, 64)
	case sql.NullInt64:
		if !x.Valid {
			return nil
		}
		return xl.SetCellValue(xls.Name, axis, x.Int64)
	case sql.NullString:
		if !x.Valid {
			return nil
		}
		v = x.String
	case tco.Number:
		if f, ok := tco.ParseNumber(x); ok {
			return xl.SetCellFloat(xls.Name, axis, f, -1, 64)
		}
		v = string(x)
	case fmt.Stringer:
		v = x.String()
	}
	if s, ok := v.(string); ok {
		return xl.SetCellStr(xls.Name, axis, s)
	}
	return xl.SetCellValue(xls.Name, axis, v)
}

// ExportBytes exports the selected sources as an xlsx workbook.
//
// The returned reader is positioned at the start.
// An empty selection returns nil, nil.
func ExportBytes(selected []string, sources map[string]tco.Source) (*bytes.Reader, error) {
	if len(selected) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := tco.Export(w, selected, sources); err != nil {
		w.xl.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return bytes.NewReader(buf.Bytes()), nil
}

// Copyright 2020, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package tco exports TCO (Total Cost of Ownership) comparison tables
// into multi-sheet workbooks, highlighting TOTAL rows and the
// lowest-priced vendors.
package tco

import (
	"errors"
	"io"
)

// Writer writes the spreadsheet consisting of the sheets created
// with NewSheet. The write finishes when Close is called.
//
// The writer SHOULD allow writing to separate sheets concurrently,
// and document if it does not provide this functionality.
type Writer interface {
	io.Closer
	NewSheet(name string, cols []Column) (Sheet, error)
}

// Sheet should be Closed when finished.
//
// A value passed to AppendRow may be a Styled, to override the
// column's style for that single cell.
type Sheet interface {
	io.Closer
	AppendRow(values ...any) error
}

// Style is a style for a column/row/cell.
type Style struct {
	// Format is the number format
	Format string
	// FontBold is true if the font is bold
	FontBold bool
	// Background is the fill color as RRGGBB hex, without '#'.
	Background string
	// FontColor is the font color as RRGGBB hex, without '#'.
	FontColor string
}

// IsZero reports whether the style is the default one.
func (s Style) IsZero() bool { return s == Style{} }

// Column contains the Name of the column and header's style and column's style.
type Column struct {
	Name           string
	Header, Column Style
	// Width of the column in characters, 0 means default.
	Width float64
}

// Styled is a cell value with its own style.
type Styled struct {
	Value any
	Style Style
}

var (
	ErrTooManyRows    = errors.New("too many rows")
	ErrUnknownSheet   = errors.New("unknown sheet")
	ErrDuplicateSheet = errors.New("duplicate sheet")
	ErrMissingColumn  = errors.New("missing column")
	ErrRowWidth       = errors.New("row width differs from column count")
)

// Number is a string that contains a number.
type Number string

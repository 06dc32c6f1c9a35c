// Copyright 2025 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package tco

import "strings"

// Tag is the highlight of a cell.
type Tag uint8

const (
	TagNone Tag = iota
	TagTotalRow
	TagFirstVendor
	TagSecondVendor
)

func (t Tag) String() string {
	switch t {
	case TagTotalRow:
		return "TOTAL_ROW"
	case TagFirstVendor:
		return "FIRST_VENDOR_CELL"
	case TagSecondVendor:
		return "SECOND_VENDOR_CELL"
	default:
		return "NONE"
	}
}

// Names of the vendor designator columns of a vendor-rank table.
const (
	FirstVendorColumn  = "1st Vendor"
	SecondVendorColumn = "2nd Vendor"
)

// TotalLabel marks a summary row.
const TotalLabel = "TOTAL"

// IsTotalRow reports whether any non-missing value, trimmed and upper-cased,
// is exactly "TOTAL".
func IsTotalRow(values []any) bool {
	for _, v := range values {
		if isMissing(v) {
			continue
		}
		if strings.ToUpper(strings.TrimSpace(text(v))) == TotalLabel {
			return true
		}
	}
	return false
}

// ClassifyVendorRow tags each column named by the row's first or second
// vendor designator. The first vendor wins if both name the same column.
func ClassifyVendorRow(first, second any, columns []string) []Tag {
	tags := make([]Tag, len(columns))
	firstName, firstOK := designator(first)
	secondName, secondOK := designator(second)
	for i, c := range columns {
		if firstOK && c == firstName {
			tags[i] = TagFirstVendor
		} else if secondOK && c == secondName {
			tags[i] = TagSecondVendor
		}
	}
	return tags
}

func designator(v any) (string, bool) {
	if isMissing(v) {
		return "", false
	}
	return text(v), true
}

// TagStyle returns the highlight style of the tag, with the given number format.
func TagStyle(t Tag, format string) Style {
	switch t {
	case TagTotalRow:
		return Style{Format: format, FontBold: true, Background: "D9EAD3", FontColor: "1A5E20"}
	case TagFirstVendor:
		return Style{Format: format, Background: "C6EFCE", FontColor: "006100"}
	case TagSecondVendor:
		return Style{Format: format, Background: "FFEB9C", FontColor: "9C6500"}
	}
	return Style{Format: format}
}

// Copyright 2025 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package tco

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// displayLang uses '.' for grouping and ',' as the decimal separator.
var displayLang = language.Indonesian

// FormatValue returns the display text of a cell value:
// 7000 is "7.000", 1234.5 is "1.234,50", and a ",00" remainder is dropped.
//
// Missing values give "", values that are not numbers are returned as text.
func FormatValue(v any) string {
	f, ok, missing := toFloat(v)
	if missing {
		return ""
	}
	if !ok {
		return text(v)
	}
	return formatFloat(f)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ""
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	// A new Printer each call: Printers are not safe for concurrent use.
	p := message.NewPrinter(displayLang)
	if f == math.Trunc(f) && math.Abs(f) < 1<<62 {
		return p.Sprintf("%d", int64(f))
	}
	s := p.Sprintf("%.2f", f)
	return strings.TrimSuffix(s, ",00")
}

// toFloat converts v to a float64.
// missing is true for nil and invalid sql.Null* values.
func toFloat(v any) (f float64, ok, missing bool) {
	if v == nil {
		return 0, false, true
	}
	if vr, isValuer := v.(driver.Valuer); isValuer {
		vv, err := vr.Value()
		if err != nil {
			return 0, false, false
		}
		if vv == nil {
			return 0, false, true
		}
		v = vv
	}
	switch x := v.(type) {
	case float64:
		return x, true, math.IsNaN(x)
	case float32:
		return float64(x), true, math.IsNaN(float64(x))
	case int:
		return float64(x), true, false
	case int8:
		return float64(x), true, false
	case int16:
		return float64(x), true, false
	case int32:
		return float64(x), true, false
	case int64:
		return float64(x), true, false
	case uint:
		return float64(x), true, false
	case uint8:
		return float64(x), true, false
	case uint16:
		return float64(x), true, false
	case uint32:
		return float64(x), true, false
	case uint64:
		return float64(x), true, false
	case bool:
		if x {
			return 1, true, false
		}
		return 0, true, false
	case Number:
		return parseFloat(string(x))
	case string:
		return parseFloat(x)
	}
	return 0, false, false
}

func parseFloat(s string) (float64, bool, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false, false
	}
	return f, true, math.IsNaN(f)
}

// isNumeric reports whether v holds a number of a Go numeric kind
// (strings are never numeric here).
func isNumeric(v any) bool {
	if vr, ok := v.(driver.Valuer); ok {
		vv, err := vr.Value()
		if err != nil || vv == nil {
			return false
		}
		v = vv
	}
	switch v.(type) {
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		Number:
		return true
	}
	return false
}

// isMissing reports whether v is nil, NaN or an invalid sql.Null* value.
// Strings are never missing.
func isMissing(v any) bool {
	if vr, ok := v.(driver.Valuer); ok {
		vv, err := vr.Value()
		if err != nil {
			return false
		}
		v = vv
	}
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

// text returns the textual representation of v.
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case Number:
		return string(x)
	case fmt.Stringer:
		return x.String()
	}
	if vr, ok := v.(driver.Valuer); ok {
		if vv, err := vr.Value(); err == nil {
			if vv == nil {
				return ""
			}
			v = vv
		}
	}
	return fmt.Sprint(v)
}

// ParseNumber returns the value of n, and whether it is a valid number.
func ParseNumber(n Number) (float64, bool) {
	f, ok, _ := parseFloat(string(n))
	return f, ok
}

// Text returns the display text of a value without number formatting.
// Missing values give "".
func Text(v any) string {
	if isMissing(v) {
		return ""
	}
	return text(v)
}

// Copyright 2025 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"io"

	"github.com/UNO-SOFT/tco"
	"github.com/xuri/excelize/v2"
)

// ReadTables reads every sheet of the workbook as a Table, in sheet order.
//
// The first row is the header. Cell values are read raw, without their
// number format, so a number column comes back as float64 values.
func ReadTables(r io.Reader) ([]string, map[string]*tco.Table, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer xl.Close()
	names := xl.GetSheetList()
	tables := make(map[string]*tco.Table, len(names))
	for _, name := range names {
		rows, err := xl.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
		var header []string
		if len(rows) != 0 {
			header, rows = rows[0], rows[1:]
		}
		if tables[name], err = tco.TableOf(header, rows); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return names, tables, nil
}

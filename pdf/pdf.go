// Copyright 2021 Tamás Gulácsi. All rights reserved.

// Package pdf renders tables into a printable document,
// highlighted the same way as the exported workbooks.
package pdf

import (
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/UNO-SOFT/tco"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// MIMEType of the rendered documents.
const MIMEType = "application/pdf"

// GridSize is the number of grid units a table row is divided into.
const GridSize = 120

// Options of Render.
type Options struct {
	// HeaderColor is the background of the header row, default e6e6e6.
	HeaderColor *Color
	// FontSize of the cells, default 8.
	FontSize float64
	// Landscape orientation instead of portrait.
	Landscape bool
}

// Render renders the selected sources into one document,
// each table under its name.
//
// An empty selection returns nil, nil.
func Render(selected []string, sources map[string]tco.Source, opts Options) ([]byte, error) {
	if len(selected) == 0 {
		return nil, nil
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 8
	}
	if opts.HeaderColor == nil {
		opts.HeaderColor = &Color{Color: props.Color{Red: 230, Green: 230, Blue: 230}}
	}
	b := config.NewBuilder().
		WithMaxGridSize(GridSize).
		WithDefaultFont(&props.Font{Size: opts.FontSize})
	if opts.Landscape {
		b = b.WithOrientation(orientation.Horizontal)
	}
	m := maroto.New(b.Build())

	for _, name := range selected {
		src, ok := sources[name]
		if !ok || src.Table == nil {
			return nil, fmt.Errorf("%q: %w", name, tco.ErrUnknownSheet)
		}
		rows, err := tableRows(name, src, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		m.AddRows(rows...)
	}
	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func tableRows(name string, src tco.Source, opts Options) ([]core.Row, error) {
	t := src.Table
	texts := make([][]string, len(t.Rows))
	for r, values := range t.Rows {
		texts[r] = make([]string, len(values))
		for i, v := range values {
			if t.Fields[i].Kind == tco.KindNumber {
				texts[r][i] = tco.FormatValue(v)
			} else {
				texts[r][i] = tco.Text(v)
			}
		}
	}
	headers := t.Names()
	sizes, err := gridSizes(headers, texts, GridSize)
	if err != nil {
		return nil, err
	}
	height := opts.FontSize * 0.8
	rows := make([]core.Row, 0, len(t.Rows)+2)
	rows = append(rows,
		row.New(opts.FontSize*1.5).Add(
			text.NewCol(GridSize, name, props.Text{Style: fontstyle.Bold, Size: opts.FontSize * 1.375}),
		))

	cols := make([]core.Col, len(headers))
	for i, h := range headers {
		cols[i] = text.NewCol(sizes[i], h, props.Text{
			Style: fontstyle.Bold, Align: align.Center, Size: opts.FontSize,
		})
	}
	rows = append(rows, row.New(height*1.2).Add(cols...).WithStyle(&props.Cell{BackgroundColor: &opts.HeaderColor.Color}))

	for r, values := range texts {
		tags := t.RowTags(r, src.Category)
		cols := make([]core.Col, len(values))
		for i, s := range values {
			st := tco.TagStyle(tags[i], "")
			tp := props.Text{Size: opts.FontSize, Align: align.Left, Style: fontstyle.Normal}
			if t.Fields[i].Kind == tco.KindNumber {
				tp.Align = align.Right
			}
			if st.FontBold {
				tp.Style = fontstyle.Bold
			}
			if st.FontColor != "" {
				c, err := ParseColor(st.FontColor)
				if err != nil {
					return nil, err
				}
				tp.Color = &c.Color
			}
			c := col.New(sizes[i]).Add(text.New(s, tp))
			if st.Background != "" {
				bg, err := ParseColor(st.Background)
				if err != nil {
					return nil, err
				}
				c = c.WithStyle(&props.Cell{BackgroundColor: &bg.Color})
			}
			cols[i] = c
		}
		rows = append(rows, row.New(height).Add(cols...))
	}
	return rows, nil
}

// gridSizes distributes total grid units among the columns,
// proportionally to the length of their texts, at least 1 each.
func gridSizes(headers []string, texts [][]string, total int) ([]int, error) {
	n := len(headers)
	if n == 0 {
		return nil, nil
	}
	if n > total {
		return nil, fmt.Errorf("%d columns do not fit into %d grid units", n, total)
	}
	widths := make([]float64, n)
	for i, s := range headers {
		widths[i] = float64(utf8.RuneCountInString(s))
	}
	for _, row := range texts {
		for i, s := range row {
			widths[i] += float64(utf8.RuneCountInString(s))
		}
	}
	var sum float64
	for i := range widths {
		widths[i] = math.Max(widths[i], 1)
		sum += widths[i]
	}

	sizes := make([]int, n)
	type rem struct {
		i int
		f float64
	}
	rems := make([]rem, n)
	free := total - n
	used := 0
	for i, w := range widths {
		exact := w / sum * float64(free)
		sizes[i] = 1 + int(exact)
		used += sizes[i]
		rems[i] = rem{i: i, f: exact - math.Floor(exact)}
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].f > rems[b].f })
	for k := 0; used < total; k = (k + 1) % n {
		sizes[rems[k].i]++
		used++
	}
	return sizes, nil
}

// Color is a props.Color usable as a flag.Value.
type Color struct {
	props.Color
}

// ParseColor parses an RRGGBB hex color.
func ParseColor(s string) (Color, error) {
	var c Color
	err := c.Set(s)
	return c, err
}

func (c *Color) String() string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// Set implements flag.Value.
func (c *Color) Set(s string) error {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%q: %w", s, err)
	}
	if len(b) != 3 {
		return fmt.Errorf("%q: want 3 bytes, got %d", s, len(b))
	}
	c.Red, c.Green, c.Blue = int(b[0]), int(b[1]), int(b[2])
	return nil
}

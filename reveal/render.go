package reveal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RenderOptions control the text table.
type RenderOptions struct {
	// EmptyGlyph stands in for label 0. Default "*".
	EmptyGlyph string

	// Header adds a column-index row and a row-index column.
	Header bool

	// Sep separates cells. Default " ".
	Sep string
}

// DefaultRenderOptions draws starred empties with row and column indices.
var DefaultRenderOptions = RenderOptions{
	EmptyGlyph: "*",
	Header:     true,
	Sep:        " ",
}

// Format renders cells with DefaultRenderOptions.
func Format(cells [][]int) string {
	return FormatWith(cells, DefaultRenderOptions)
}

// FormatWith renders cells as right-aligned columns, one line per row.
// An empty grid renders as "".
func FormatWith(cells [][]int, opt RenderOptions) string {
	if len(cells) == 0 {
		return ""
	}
	if opt.EmptyGlyph == "" {
		opt.EmptyGlyph = DefaultRenderOptions.EmptyGlyph
	}
	if opt.Sep == "" {
		opt.Sep = DefaultRenderOptions.Sep
	}

	// cell tokens and the widest one
	tokens := make([][]string, len(cells))
	width := 1
	cols := 0
	for r, row := range cells {
		tokens[r] = make([]string, len(row))
		for c, v := range row {
			s := opt.EmptyGlyph
			if v != 0 {
				s = strconv.Itoa(v)
			}
			tokens[r][c] = s
			width = max(width, len(s))
		}
		cols = max(cols, len(row))
	}
	if opt.Header && cols > 0 {
		width = max(width, len(strconv.Itoa(cols-1)))
	}
	rowLabel := len(strconv.Itoa(len(cells) - 1))

	var b strings.Builder
	if opt.Header {
		b.WriteString(strings.Repeat(" ", rowLabel))
		for c := 0; c < cols; c++ {
			b.WriteString(opt.Sep)
			fmt.Fprintf(&b, "%*d", width, c)
		}
		b.WriteByte('\n')
	}
	for r, row := range tokens {
		if opt.Header {
			fmt.Fprintf(&b, "%*d", rowLabel, r)
		}
		for c, s := range row {
			if c > 0 || opt.Header {
				b.WriteString(opt.Sep)
			}
			fmt.Fprintf(&b, "%*s", width, s)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render writes Format(cells) to w.
func Render(w io.Writer, cells [][]int) error {
	_, err := io.WriteString(w, Format(cells))
	return err
}

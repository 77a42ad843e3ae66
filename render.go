package halfblock

import (
	"iter"
	"strconv"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

// Glyphs used for a cell.
const (
	Empty     = ' '
	UpperHalf = '▀'
	LowerHalf = '▄'
	FullBlock = '█'
)

// Opaque is the only alpha value at which a pixel is considered lit.
const Opaque = 255

const (
	sgrFg    = "\x1b[38;2;"
	sgrBg    = ";48;2;"
	sgrReset = "\x1b[0m"
)

// Cell is a single terminal character covering two vertically stacked pixels.
type Cell struct {
	TopLit    bool
	BottomLit bool

	// Top and Bottom are nil if the half is unlit or the source carries no
	// color.
	Top    *colorful.Color
	Bottom *colorful.Color
}

// CellAt returns the cell for column x covering source rows y and y+1. A
// missing row y+1 is treated as transparent.
func CellAt(src PixelSource, x, y int) Cell {
	var cell Cell

	cell.TopLit = src.Alpha(x, y) == Opaque
	if y+1 < src.Height() {
		cell.BottomLit = src.Alpha(x, y+1) == Opaque
	}

	if cell.TopLit {
		if col, ok := src.Color(x, y); ok {
			cell.Top = &col
		}
	}

	if cell.BottomLit {
		if col, ok := src.Color(x, y+1); ok {
			cell.Bottom = &col
		}
	}

	return cell
}

// Glyph returns the character for a cell with the given lit halves. With
// color both halves can be painted independently on an upper half block, so
// a full block is only used without color.
func Glyph(top, bottom, color bool) rune {
	switch {
	case top && bottom:
		if color {
			return UpperHalf
		}
		return FullBlock
	case top:
		return UpperHalf
	case bottom:
		return LowerHalf
	default:
		return Empty
	}
}

// Colors returns the foreground and background colors of the cell, either of
// which may be nil.
func (c Cell) Colors() (fg, bg *colorful.Color) {
	switch {
	case c.TopLit && c.BottomLit:
		return c.Top, c.Bottom
	case c.TopLit:
		return c.Top, nil
	case c.BottomLit:
		return c.Bottom, nil
	default:
		return nil, nil
	}
}

// String returns the cell as it would appear in a line.
func (c Cell) String(color bool) string {
	return string(c.appendTo(nil, color))
}

func (c Cell) appendTo(buf []byte, color bool) []byte {
	glyph := Glyph(c.TopLit, c.BottomLit, color)
	if !color {
		return utf8.AppendRune(buf, glyph)
	}

	fg, bg := c.Colors()
	if fg == nil {
		return utf8.AppendRune(buf, glyph)
	}

	buf = append(buf, sgrFg...)
	buf = appendRGB(buf, *fg)
	if bg != nil {
		buf = append(buf, sgrBg...)
		buf = appendRGB(buf, *bg)
	}
	buf = append(buf, 'm')
	buf = utf8.AppendRune(buf, glyph)

	return append(buf, sgrReset...)
}

func appendRGB(buf []byte, col colorful.Color) []byte {
	r, g, b := col.RGB255()
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ';')
	return strconv.AppendUint(buf, uint64(b), 10)
}

// LineCount returns the number of lines the source renders to.
func LineCount(src PixelSource) int {
	if src.Width() <= 0 || src.Height() <= 0 {
		return 0
	}

	return (src.Height() + 1) / 2
}

// Line renders source rows y and y+1 into a single line, without a trailing
// newline.
func Line(src PixelSource, y int, color bool) string {
	buf := make([]byte, 0, src.Width()*4)
	for x := 0; x < src.Width(); x++ {
		buf = CellAt(src, x, y).appendTo(buf, color)
	}

	return string(buf)
}

// Lines returns the rendered lines of the source from top to bottom, without
// trailing newlines. The sequence can be ranged over any number of times.
func Lines(src PixelSource, color bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		if src.Width() <= 0 {
			return
		}

		for y := 0; y < src.Height(); y += 2 {
			if !yield(Line(src, y, color)) {
				return
			}
		}
	}
}

package halfblock

import (
	"bufio"
	"io"
	"iter"
	"slices"
)

// Frame is a fully rendered image.
type Frame struct {
	Width  int
	Height int

	Rows []string
}

func newFrame(src PixelSource) *Frame {
	return &Frame{
		Width:  src.Width(),
		Height: src.Height(),
		Rows:   make([]string, LineCount(src)),
	}
}

// Render renders the whole source into a frame.
func Render(src PixelSource, color bool) *Frame {
	frame := newFrame(src)
	frame.Rows = slices.AppendSeq(frame.Rows[:0], Lines(src, color))
	return frame
}

// WriteTo writes every row of the frame followed by a newline.
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	return WriteLines(w, slices.Values(f.Rows))
}

// WriteLines writes each line followed by a newline through a buffered
// writer, flushing once all lines have been written.
func WriteLines(w io.Writer, lines iter.Seq[string]) (int64, error) {
	wr := bufio.NewWriter(w)

	var total int64
	for line := range lines {
		n, err := wr.WriteString(line)
		total += int64(n)
		if err != nil {
			return total, err
		}

		err = wr.WriteByte('\n')
		if err != nil {
			return total, err
		}
		total++
	}

	return total, wr.Flush()
}

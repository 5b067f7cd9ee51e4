// Package slicer applies a filter set to an input stream along one axis,
// either the rows of the whole input or the columns of every row.
package slicer

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/praetorian-inc/slice/pkg/filter"
	"github.com/praetorian-inc/slice/pkg/text"
)

// Axis is the dimension being sliced.
type Axis int

const (
	Rows Axis = iota
	Columns
)

func (a Axis) String() string {
	if a == Columns {
		return "columns"
	}
	return "rows"
}

// Config configures a Slicer.
type Config struct {
	Axis Axis
	// Filters is the parsed filter set. A nil Filters selects everything
	// and copies the input unchanged; an empty non-nil set selects nothing.
	Filters filter.Set
	// Delimiter splits columns literally. Empty means runs of whitespace.
	// Ignored for the rows axis.
	Delimiter string
}

// Stats summarizes a completed run.
type Stats struct {
	// Lines is the number of input lines read.
	Lines int
	// Items counts rows, or columns across all rows for the columns axis.
	// Columns are not counted when the input is copied unchanged.
	Items int
	// Selected is how many of those items were written.
	Selected     int
	BytesWritten int64
}

// Slicer slices text input along one axis.
type Slicer struct {
	config Config
}

// New creates a Slicer.
func New(config Config) *Slicer {
	return &Slicer{config: config}
}

// Slice reads all of r and writes the selected rows or columns to w.
// Errors from r or w abort the run immediately.
func (s *Slicer) Slice(r io.Reader, w io.Writer) (*Stats, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	stats := &Stats{}

	var err error
	switch s.config.Axis {
	case Rows:
		err = s.sliceRows(r, bw, stats)
	case Columns:
		err = s.sliceColumns(r, bw, stats)
	default:
		err = fmt.Errorf("unknown axis %d", s.config.Axis)
	}
	if err != nil {
		return stats, err
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("writing output: %w", err)
	}
	stats.BytesWritten = cw.n
	return stats, nil
}

// sliceRows materializes every line first, since end-relative filters
// cannot be resolved until the row count is known.
func (s *Slicer) sliceRows(r io.Reader, w *bufio.Writer, stats *Stats) error {
	lines, trailingNewline, err := text.ReadLines(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	stats.Lines = len(lines)
	stats.Items = len(lines)

	selected := lines
	if s.config.Filters != nil {
		selected = filter.Select(lines, s.config.Filters.Resolve(len(lines)))
	}
	stats.Selected = len(selected)
	if len(selected) == 0 {
		return nil
	}

	out := text.Join(selected, text.RowSeparator)
	if trailingNewline {
		out += text.RowSeparator
	}
	if _, err := w.WriteString(out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// sliceColumns resolves the filters against each row's own width.
func (s *Slicer) sliceColumns(r io.Reader, w *bufio.Writer, stats *Stats) error {
	lr := text.NewLineReader(r)
	for {
		line, terminated, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		stats.Lines++
		out := line
		if s.config.Filters != nil {
			cols := text.Split(line, s.config.Delimiter)
			selected := filter.Select(cols, s.config.Filters.Resolve(len(cols)))
			stats.Items += len(cols)
			stats.Selected += len(selected)
			out = text.Join(selected, text.ColumnSeparator)
		}
		if terminated {
			out += text.RowSeparator
		}

		if _, err := w.WriteString(out); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

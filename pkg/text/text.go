// Package text splits lines into columns and joins selected items back into
// output text.
package text

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const (
	// ColumnSeparator joins selected columns regardless of the input delimiter.
	ColumnSeparator = " "
	// RowSeparator joins selected rows.
	RowSeparator = "\n"
)

// Split breaks line into columns. An empty delimiter splits on runs of
// whitespace and drops leading and trailing empties. Any other delimiter
// is matched literally and consecutive delimiters yield empty columns.
func Split(line, delimiter string) []string {
	if delimiter == "" {
		return strings.Fields(line)
	}
	return strings.Split(line, delimiter)
}

// Join concatenates items with sep between them.
func Join(items []string, sep string) string {
	return strings.Join(items, sep)
}

// LineReader yields the lines of an input one at a time without their
// line terminators.
type LineReader struct {
	br *bufio.Reader
}

// NewLineReader wraps r in a LineReader.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{br: bufio.NewReader(r)}
}

// Next returns the next line and whether it was terminated by a newline.
// It returns io.EOF once the input is exhausted.
func (l *LineReader) Next() (line string, terminated bool, err error) {
	s, err := l.br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return s, false, nil
		}
		return "", false, err
	}
	return strings.TrimSuffix(s, "\n"), true, nil
}

// ReadLines reads every line of r. trailingNewline reports whether the
// input ended with a newline.
func ReadLines(r io.Reader) (lines []string, trailingNewline bool, err error) {
	lr := NewLineReader(r)
	for {
		line, terminated, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return lines, trailingNewline, nil
		}
		if err != nil {
			return nil, false, err
		}
		lines = append(lines, line)
		trailingNewline = terminated
	}
}

package slicer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/praetorian-inc/slice/pkg/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fiveLines = "one\ntwo\nthree\nfour\nfive\n"

func run(t *testing.T, config Config, input string) (string, *Stats) {
	t.Helper()
	var out bytes.Buffer
	stats, err := New(config).Slice(strings.NewReader(input), &out)
	require.NoError(t, err)
	return out.String(), stats
}

func mustFilters(t *testing.T, tokens ...string) filter.Set {
	t.Helper()
	set, err := filter.ParseAll(tokens)
	require.NoError(t, err)
	return set
}

func TestSliceRows(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tokens   []string
		expected string
	}{
		{
			name:     "head",
			input:    fiveLines,
			tokens:   []string{":3"},
			expected: "one\ntwo\nthree\n",
		},
		{
			name:     "tail from line 3",
			input:    fiveLines,
			tokens:   []string{"3:"},
			expected: "three\nfour\nfive\n",
		},
		{
			name:     "union keeps input order",
			input:    fiveLines,
			tokens:   []string{"5", "1:2"},
			expected: "one\ntwo\nfive\n",
		},
		{
			name:     "missing final newline is preserved",
			input:    "one\ntwo\nthree",
			tokens:   []string{"2:"},
			expected: "two\nthree",
		},
		{
			name:     "missing final newline applies to any selection",
			input:    "one\ntwo\nthree",
			tokens:   []string{"1"},
			expected: "one",
		},
		{
			name:     "out of range selects nothing",
			input:    fiveLines,
			tokens:   []string{"100"},
			expected: "",
		},
		{
			name:     "empty lines are rows",
			input:    "a\n\nc\n",
			tokens:   []string{"2"},
			expected: "\n",
		},
		{
			name:     "empty input",
			input:    "",
			tokens:   []string{":"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := run(t, Config{Axis: Rows, Filters: mustFilters(t, tt.tokens...)}, tt.input)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestSliceRows_NoFiltersCopiesInput(t *testing.T) {
	out, stats := run(t, Config{Axis: Rows}, "a\nb")
	assert.Equal(t, "a\nb", out)
	assert.Equal(t, 2, stats.Lines)
	assert.Equal(t, 2, stats.Selected)
}

func TestSliceRows_EmptyFilterSetSelectsNothing(t *testing.T) {
	out, stats := run(t, Config{Axis: Rows, Filters: filter.Set{}}, fiveLines)
	assert.Empty(t, out)
	assert.Equal(t, 0, stats.Selected)
}

func TestSliceRows_Stats(t *testing.T) {
	out, stats := run(t, Config{Axis: Rows, Filters: mustFilters(t, ":3")}, fiveLines)
	assert.Equal(t, 5, stats.Lines)
	assert.Equal(t, 5, stats.Items)
	assert.Equal(t, 3, stats.Selected)
	assert.Equal(t, int64(len(out)), stats.BytesWritten)
}

func TestSliceColumns(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		tokens    []string
		delimiter string
		expected  string
	}{
		{
			name:     "docker images example",
			input:    "vault 1.8.4 dc15db720d79 2 days ago 186MB\n",
			tokens:   []string{"1", "4:6"},
			expected: "vault 2 days ago\n",
		},
		{
			name:     "to end adapts to each row width",
			input:    "a b c\nd e\nf g h i\n",
			tokens:   []string{"2:"},
			expected: "b c\ne\ng h i\n",
		},
		{
			name:     "short rows contribute nothing for missing columns",
			input:    "a b c\nd\n",
			tokens:   []string{"3"},
			expected: "c\n\n",
		},
		{
			name:      "literal delimiter keeps empty columns aligned",
			input:     "a,,c\nd,e,f\n",
			tokens:    []string{"2:3"},
			delimiter: ",",
			expected:  " c\ne f\n",
		},
		{
			name:      "output is space separated whatever the delimiter",
			input:     "x|y|z\n",
			tokens:    []string{"1", "3"},
			delimiter: "|",
			expected:  "x z\n",
		},
		{
			name:     "missing final newline is preserved",
			input:    "a b\nc d",
			tokens:   []string{"2"},
			expected: "b\nd",
		},
		{
			name:     "whitespace is normalized",
			input:    "  a\t\tb   c  \n",
			tokens:   []string{":"},
			expected: "a b c\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Config{Axis: Columns, Filters: mustFilters(t, tt.tokens...), Delimiter: tt.delimiter}
			out, _ := run(t, config, tt.input)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestSliceColumns_NoFiltersCopiesLinesVerbatim(t *testing.T) {
	input := "  a\t\tb   c  \nd e\n"
	out, stats := run(t, Config{Axis: Columns}, input)
	assert.Equal(t, input, out)
	assert.Equal(t, 2, stats.Lines)
}

func TestSliceColumns_Stats(t *testing.T) {
	_, stats := run(t, Config{Axis: Columns, Filters: mustFilters(t, "1")}, "a b c\nd e\n")
	assert.Equal(t, 2, stats.Lines)
	assert.Equal(t, 5, stats.Items)
	assert.Equal(t, 2, stats.Selected)
}

func TestSlice_Idempotent(t *testing.T) {
	config := Config{Axis: Columns, Filters: mustFilters(t, "4:6", "1")}
	input := "vault 1.8.4 dc15db720d79 2 days ago 186MB\nredis 6 abc 3 weeks ago 100MB\n"

	first, _ := run(t, config, input)
	second, _ := run(t, config, input)
	assert.Equal(t, first, second)
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestSlice_WriteError(t *testing.T) {
	for _, axis := range []Axis{Rows, Columns} {
		t.Run(axis.String(), func(t *testing.T) {
			_, err := New(Config{Axis: axis}).Slice(strings.NewReader(fiveLines), errWriter{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "writing output")
			assert.Contains(t, err.Error(), "broken pipe")
		})
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("input/output error")
}

func TestSlice_ReadError(t *testing.T) {
	for _, axis := range []Axis{Rows, Columns} {
		t.Run(axis.String(), func(t *testing.T) {
			var out bytes.Buffer
			_, err := New(Config{Axis: axis}).Slice(errReader{}, &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "reading input")
		})
	}
}

func TestSlice_UnknownAxis(t *testing.T) {
	var out bytes.Buffer
	_, err := New(Config{Axis: Axis(9)}).Slice(strings.NewReader(fiveLines), &out)
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "rows", Rows.String())
	assert.Equal(t, "columns", Columns.String())
}

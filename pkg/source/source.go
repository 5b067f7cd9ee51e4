// Package source opens the input of a slicing run: a file path or standard
// input, decompressed transparently when it is gzip, zstd, xz or brotli.
package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Compression identifies how an input stream is encoded.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
	XZ
	Brotli
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case XZ:
		return "xz"
	case Brotli:
		return "brotli"
	default:
		return "none"
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Input is an opened, possibly decompressed, input stream.
type Input struct {
	io.Reader
	Name        string
	Compression Compression

	closers []func() error
}

// Close releases the decoder and the underlying file. Standard input is
// never closed.
func (in *Input) Close() error {
	var first error
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	in.closers = nil
	return first
}

// Open opens path for reading. An empty path or "-" reads stdin.
func Open(path string) (*Input, error) {
	if path == "" || path == Stdin {
		return Wrap(os.Stdin, "<stdin>", false)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", path, err)
	}

	in, err := Wrap(f, path, strings.EqualFold(filepath.Ext(path), ".br"))
	if err != nil {
		f.Close()
		return nil, err
	}
	in.closers = append([]func() error{f.Close}, in.closers...)
	return in, nil
}

// Wrap sniffs r for a known compression format and returns a reader over
// the decoded content. Brotli has no magic number, so the caller states it.
func Wrap(r io.Reader, name string, isBrotli bool) (*Input, error) {
	if isBrotli {
		return &Input{Reader: brotli.NewReader(r), Name: name, Compression: Brotli}, nil
	}

	br := bufio.NewReader(r)
	head, err := br.Peek(len(xzMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("reading input %s: %w", name, err)
	}

	in := &Input{Name: name}
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream %s: %w", name, err)
		}
		in.Reader = zr
		in.Compression = Gzip
		in.closers = append(in.closers, zr.Close)
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening zstd stream %s: %w", name, err)
		}
		in.Reader = zr
		in.Compression = Zstd
		in.closers = append(in.closers, func() error {
			zr.Close()
			return nil
		})
	case bytes.HasPrefix(head, xzMagic):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening xz stream %s: %w", name, err)
		}
		in.Reader = xr
		in.Compression = XZ
	default:
		in.Reader = br
	}
	return in, nil
}

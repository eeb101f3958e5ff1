package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// stackedCloser closes every layer of a decoded stream, innermost last.
type stackedCloser struct {
	io.Reader
	layers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.layers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open returns a reader for path. "-" reads stdin. Gzip input is detected by
// its magic bytes or a .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fh)
	magic, _ := br.Peek(2)
	gz := len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b
	if !gz && !strings.HasSuffix(path, ".gz") {
		return &stackedCloser{Reader: br, layers: []io.Closer{fh}}, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return &stackedCloser{Reader: zr, layers: []io.Closer{zr, fh}}, nil
}

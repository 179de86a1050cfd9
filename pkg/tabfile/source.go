package tabfile

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4/v4"
)

// Open opens a delimiter-separated file for reading. Files ending in
// .gz or .lz4 are decompressed transparently; everything else is read
// as plain text. Close on the returned Reader releases the file handle
// and the decompressor.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	src, closers, err := newSource(file, filepath.Ext(path))
	if err != nil {
		file.Close()
		return nil, err
	}

	r := NewReader(src)
	r.closers = closers
	return r, nil
}

// newSource wraps file in a streaming decompressor chosen by extension.
func newSource(file *os.File, ext string) (io.Reader, []io.Closer, error) {
	switch ext {
	case ".gz":
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return gz, []io.Closer{gz, file}, nil
	case ".lz4":
		return lz4.NewReader(file), []io.Closer{file}, nil
	default:
		return file, []io.Closer{file}, nil
	}
}

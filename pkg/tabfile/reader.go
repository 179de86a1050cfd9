// Package tabfile reads tab-delimited (or otherwise delimiter-separated)
// text files line by line. It supports skipping a fixed number of leading
// lines, dropping comment and blank lines, and transparent decompression
// of gzip and lz4 inputs.
package tabfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader reads delimiter-separated records from a text stream.
//
// Configuration methods follow the builder pattern and must be called
// before the first Next:
//
//	r, err := tabfile.Open("data.tsv")
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//	r.Separator(',').SkipLines(2).CommentRune('#')
//	for {
//		rec, err := r.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		fmt.Println(rec.Fields())
//	}
//
// Iteration is lazy, forward-only and not restartable.
type Reader struct {
	br      *bufio.Reader
	closers []io.Closer

	separator  rune
	comment    rune
	hasComment bool
	skipLines  int
	skipEmpty  bool

	linesRead   int64
	rowsYielded int64
	bytesRead   int64
}

// NewReader wraps an arbitrary byte stream. The caller keeps ownership
// of r; Close on the returned Reader is a no-op. The default separator
// is a tab and no lines are skipped.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		br:        bufio.NewReader(r),
		separator: '\t',
	}
}

// Separator sets the field delimiter. The default is '\t'.
func (r *Reader) Separator(sep rune) *Reader {
	r.separator = sep
	return r
}

// SkipLines sets the number of leading lines to discard unconditionally,
// regardless of their content. The default is 0. Comment and empty-line
// filtering never see skipped lines.
func (r *Reader) SkipLines(n int) *Reader {
	r.skipLines = n
	return r
}

// CommentRune sets a comment character. Lines starting with it are
// discarded after the leading skip window. By default no comment
// filtering takes place.
func (r *Reader) CommentRune(c rune) *Reader {
	r.comment = c
	r.hasComment = true
	return r
}

// SkipEmptyLines controls whether blank lines are discarded. The default
// is false: blank lines yield a Record with a single empty field. Lines
// inside the leading skip window are dropped either way.
func (r *Reader) SkipEmptyLines(skip bool) *Reader {
	r.skipEmpty = skip
	return r
}

// Next returns the next record. It blocks until a line is available and
// returns io.EOF once the stream is exhausted. Read failures are
// returned wrapped; iteration cannot continue after an error.
func (r *Reader) Next() (*Record, error) {
	for {
		line, err := r.br.ReadString('\n')
		if len(line) > 0 {
			r.linesRead++
			r.bytesRead += int64(len(line))
		}
		if err != nil {
			if err != io.EOF {
				return nil, fmt.Errorf("failed to read line: %w", err)
			}
			if len(line) == 0 {
				return nil, io.EOF
			}
			// Final line without a terminator, fall through.
		}
		if r.skipLines > 0 {
			r.skipLines--
			continue
		}
		if r.hasComment && strings.HasPrefix(line, string(r.comment)) {
			continue
		}
		if r.skipEmpty && strings.TrimSpace(line) == "" {
			continue
		}
		r.rowsYielded++
		return newRecord(line, r.separator), nil
	}
}

// Stats returns the number of physical lines read, records yielded and
// bytes consumed so far.
func (r *Reader) Stats() (linesRead, rowsYielded, bytesRead int64) {
	return r.linesRead, r.rowsYielded, r.bytesRead
}

// Close releases the underlying file handle and any decompressor
// acquired by Open. It is safe to call on a Reader built with NewReader.
func (r *Reader) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.closers = nil
	return firstErr
}

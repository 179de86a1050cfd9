package tabfile

import (
	"strings"
	"unicode/utf8"
)

// Record is one line from a delimiter-separated file. It keeps the raw
// line and exposes the individual fields of that line. A Record stays
// valid after the Reader that produced it has moved on or been closed.
type Record struct {
	line   string
	ranges []fieldRange
}

// fieldRange marks the byte offsets of one field within the line.
type fieldRange struct {
	start, end int
}

// newRecord computes the field boundaries of line up front. Fields are
// sliced out of the original line on demand, so producing a Record does
// not copy any field data.
func newRecord(line string, separator rune) *Record {
	line = trimTerminator(line)

	ranges := make([]fieldRange, 0, strings.Count(line, string(separator))+1)
	start := 0
	for i, c := range line {
		if c == separator {
			ranges = append(ranges, fieldRange{start, i})
			start = i + utf8.RuneLen(c)
		}
	}
	ranges = append(ranges, fieldRange{start, len(line)})

	return &Record{line: line, ranges: ranges}
}

// trimTerminator strips a trailing "\n" or "\r\n" from a raw line.
func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Fields returns the separator-delimited fields of the line.
func (r *Record) Fields() []string {
	fields := make([]string, len(r.ranges))
	for i, rng := range r.ranges {
		fields[i] = r.line[rng.start:rng.end]
	}
	return fields
}

// Field returns the i-th field. It panics if i is out of range,
// like a slice index would.
func (r *Record) Field(i int) string {
	rng := r.ranges[i]
	return r.line[rng.start:rng.end]
}

// Line returns the original line with the line terminator stripped.
func (r *Record) Line() string {
	return r.line
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.ranges)
}

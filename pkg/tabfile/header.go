package tabfile

import "errors"

var (
	// ErrUnknownColumn is returned when a column name does not exist
	// in the header.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrMissingColumn is returned when a record has fewer fields
	// than the header position of the requested column.
	ErrMissingColumn = errors.New("missing column")
)

// Header maps column names to field positions.
type Header map[string]int

// ReadHeader consumes the next record of r and builds a Header from its
// fields. Duplicate column names keep the last position. Call it before
// streaming the data rows, typically right after configuring the Reader.
func ReadHeader(r *Reader) (Header, error) {
	rec, err := r.Next() // io.EOF too
	if err != nil {
		return nil, err
	}
	header := make(Header, rec.Len())
	for i := 0; i < rec.Len(); i++ {
		header[rec.Field(i)] = i
	}
	return header, nil
}

// Column returns the named field of rec. It returns ErrUnknownColumn if
// name is not in the header and ErrMissingColumn if rec is too short to
// contain it.
func (h Header) Column(rec *Record, name string) (string, error) {
	i, ok := h[name]
	if !ok {
		return "", ErrUnknownColumn
	}
	if i >= rec.Len() {
		return "", ErrMissingColumn
	}
	return rec.Field(i), nil
}

package tabfile

import "io"

// Row couples a Record with the error that interrupted reading, for
// delivery over a Stream. Exactly one of Record and Err is set.
type Row struct {
	Record *Record
	Err    error
}

// Stream is a receive-only channel of rows.
type Stream <-chan *Row

// NewStream reads from r asynchronously. The returned channel is closed
// on EOF. If a read fails, the error is passed over the channel and the
// channel is closed; it is up to the application to decide whether a
// new Reader should be created to continue. The core Reader itself
// stays single-threaded: the stream is a wrapper, and r must not be
// used directly while the stream is live.
func NewStream(r *Reader, bufsize uint) Stream {
	ch := make(chan *Row, bufsize)
	go func() {
		defer close(ch)
		for {
			rec, err := r.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				ch <- &Row{nil, err}
				return
			}
			ch <- &Row{rec, nil}
		}
	}()
	return ch
}

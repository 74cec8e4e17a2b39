package textkit

import (
	"bufio"
	"errors"
	"io"
)

// LineReader yields the records of a buffered reader one at a time, each
// record keeping its trailing newline when the data has one.
type LineReader struct {
	rs   *bufio.Reader
	line []byte
	err  error
	done bool
}

func NewLineReader(r *bufio.Reader) *LineReader {
	return &LineReader{rs: r}
}

func (r *LineReader) Next() bool {
	if r.done {
		r.line = nil
		return false
	}
	line, err := r.rs.ReadBytes('\n')
	if err != nil {
		r.done = true
		if !errors.Is(err, io.EOF) {
			r.err = err
		}
	}
	r.line = line
	return len(line) > 0
}

// Line returns the current record. The slice is only valid until the next
// call to Next.
func (r *LineReader) Line() []byte {
	return r.line
}

func (r *LineReader) Done() bool {
	return r.done
}

func (r *LineReader) Err() error {
	return r.err
}
